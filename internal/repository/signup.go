package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"AIV_training_backend/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres error code raised on duplicate keys.
const uniqueViolation = "23505"

type Signup struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	FullName     *string   `db:"full_name"`
	ReferralCode *string   `db:"referral_code"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r *Repository) CreateSignup(ctx context.Context, signup *model.Signup) error {
	query, args, err := squirrel.
		Insert("signups").
		SetMap(map[string]interface{}{
			"id":            signup.ID,
			"email":         signup.Email,
			"full_name":     signup.FullName,
			"referral_code": signup.ReferralCode,
			"created_at":    signup.CreatedAt,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build signup insert query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert signup: %w", err)
	}

	return nil
}

func (r *Repository) ListSignups(ctx context.Context) ([]*model.Signup, error) {
	query, args, err := squirrel.
		Select("id", "email", "full_name", "referral_code", "created_at").
		From("signups").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build signup list query: %w", err)
	}

	var signups []Signup
	err = r.db.SelectContext(ctx, &signups, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get signups: %w", err)
	}

	list := make([]*model.Signup, len(signups))
	for i, s := range signups {
		list[i] = &model.Signup{
			ID:           s.ID,
			Email:        s.Email,
			FullName:     s.FullName,
			ReferralCode: s.ReferralCode,
			CreatedAt:    s.CreatedAt,
		}
	}

	return list, nil
}
