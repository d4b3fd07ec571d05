package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"AIV_training_backend/internal/model"
	"AIV_training_backend/internal/repository"
	"AIV_training_backend/pkg/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AdminService struct {
	repo     AdminRepository
	sessions *auth.SessionAuth
}

func NewAdminService(repo AdminRepository, sessions *auth.SessionAuth) *AdminService {
	return &AdminService{
		repo:     repo,
		sessions: sessions,
	}
}

func (s *AdminService) SignUp(ctx context.Context, email, password string) (*model.AdminAccount, error) {
	email, err := validateEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < 6 {
		return nil, &ValidationError{Message: "Password must be at least 6 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &model.AdminAccount{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateAdminAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, ErrAccountAlreadyExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

func (s *AdminService) SignIn(ctx context.Context, email, password string) (string, error) {
	email, err := validateEmail(email)
	if err != nil {
		return "", err
	}

	account, err := s.repo.GetAdminAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.sessions.GenerateToken(account.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return token, nil
}

// RequireAdminRole verifies the role against the database on every call.
// A token only proves the caller is authenticated; the role is never
// trusted from any client-held state.
func (s *AdminService) RequireAdminRole(ctx context.Context, accountID uuid.UUID) error {
	isAdmin, err := s.repo.HasRole(ctx, accountID, model.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to check admin role: %w", err)
	}
	if !isAdmin {
		return ErrAccessDenied
	}
	return nil
}
