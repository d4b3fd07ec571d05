package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"AIV_training_backend/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

type AdminAccount struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r *Repository) CreateAdminAccount(ctx context.Context, account *model.AdminAccount) error {
	return r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := squirrel.
			Insert("admin_accounts").
			SetMap(map[string]interface{}{
				"id":            account.ID,
				"email":         account.Email,
				"password_hash": account.PasswordHash,
				"created_at":    account.CreatedAt,
			}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build account insert query: %w", err)
		}

		_, err = tx.ExecContext(ctx, query, args...)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return ErrDuplicateAccount
			}
			return fmt.Errorf("failed to insert account: %w", err)
		}

		return nil
	})
}

func (r *Repository) GetAdminAccountByEmail(ctx context.Context, email string) (*model.AdminAccount, error) {
	var account AdminAccount
	query, args, err := squirrel.
		Select("id", "email", "password_hash", "created_at").
		From("admin_accounts").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.GetContext(ctx, &account, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &model.AdminAccount{
		ID:           account.ID,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
	}, nil
}

// HasRole checks the role against the database. Callers must not cache the
// result beyond the current request.
func (r *Repository) HasRole(ctx context.Context, accountID uuid.UUID, role string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From("account_roles").
		Where(squirrel.Eq{"account_id": accountID, "role": role}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.db.GetContext(ctx, &one, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (r *Repository) GrantRole(ctx context.Context, accountID uuid.UUID, role string) error {
	query, args, err := squirrel.
		Insert("account_roles").
		Columns("account_id", "role").
		Values(accountID, role).
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}

	return nil
}
