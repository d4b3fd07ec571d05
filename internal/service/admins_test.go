package service

import (
	"context"
	"testing"
	"time"

	"AIV_training_backend/internal/model"
	"AIV_training_backend/internal/repository"
	"AIV_training_backend/internal/service/mocks"
	"AIV_training_backend/pkg/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAdminService(repo *mocks.MockAdminRepository) (*AdminService, *auth.SessionAuth) {
	sessions := auth.NewSessionAuth("test-secret", time.Hour)
	return NewAdminService(repo, sessions), sessions
}

func TestAdminService_SignUp(t *testing.T) {
	t.Run("Short password never reaches storage", func(t *testing.T) {
		mockRepo := &mocks.MockAdminRepository{}
		s, _ := newTestAdminService(mockRepo)

		_, err := s.SignUp(context.Background(), "admin@example.com", "12345")

		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
		mockRepo.AssertNotCalled(t, "CreateAdminAccount")
	})

	t.Run("Duplicate account", func(t *testing.T) {
		mockRepo := &mocks.MockAdminRepository{}
		mockRepo.On("CreateAdminAccount", mock.Anything, mock.Anything).
			Return(repository.ErrDuplicateAccount)
		s, _ := newTestAdminService(mockRepo)

		_, err := s.SignUp(context.Background(), "admin@example.com", "secret123")
		assert.ErrorIs(t, err, ErrAccountAlreadyExists)
	})

	t.Run("Password is stored hashed", func(t *testing.T) {
		mockRepo := &mocks.MockAdminRepository{}
		mockRepo.On("CreateAdminAccount", mock.Anything, mock.MatchedBy(func(a *model.AdminAccount) bool {
			return a.Email == "admin@example.com" &&
				bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("secret123")) == nil
		})).Return(nil)
		s, _ := newTestAdminService(mockRepo)

		account, err := s.SignUp(context.Background(), " Admin@Example.com ", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "admin@example.com", account.Email)
	})
}

func TestAdminService_SignIn(t *testing.T) {
	accountID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	account := &model.AdminAccount{
		ID:           accountID,
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}

	t.Run("Unknown email", func(t *testing.T) {
		mockRepo := &mocks.MockAdminRepository{}
		mockRepo.On("GetAdminAccountByEmail", mock.Anything, "nobody@example.com").
			Return(nil, repository.ErrNotFound)
		s, _ := newTestAdminService(mockRepo)

		_, err := s.SignIn(context.Background(), "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo := &mocks.MockAdminRepository{}
		mockRepo.On("GetAdminAccountByEmail", mock.Anything, "admin@example.com").
			Return(account, nil)
		s, _ := newTestAdminService(mockRepo)

		_, err := s.SignIn(context.Background(), "admin@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Valid credentials yield a session token", func(t *testing.T) {
		mockRepo := &mocks.MockAdminRepository{}
		mockRepo.On("GetAdminAccountByEmail", mock.Anything, "admin@example.com").
			Return(account, nil)
		s, sessions := newTestAdminService(mockRepo)

		token, err := s.SignIn(context.Background(), "Admin@Example.com", "secret123")
		assert.NoError(t, err)

		parsed, err := sessions.ParseToken(token)
		assert.NoError(t, err)
		assert.Equal(t, accountID, parsed)
	})
}

func TestAdminService_RequireAdminRole(t *testing.T) {
	accountID := uuid.New()

	t.Run("Role present", func(t *testing.T) {
		mockRepo := &mocks.MockAdminRepository{}
		mockRepo.On("HasRole", mock.Anything, accountID, model.RoleAdmin).
			Return(true, nil)
		s, _ := newTestAdminService(mockRepo)

		assert.NoError(t, s.RequireAdminRole(context.Background(), accountID))
	})

	t.Run("Authenticated but not admin", func(t *testing.T) {
		mockRepo := &mocks.MockAdminRepository{}
		mockRepo.On("HasRole", mock.Anything, accountID, model.RoleAdmin).
			Return(false, nil)
		s, _ := newTestAdminService(mockRepo)

		assert.ErrorIs(t, s.RequireAdminRole(context.Background(), accountID), ErrAccessDenied)
	})

	t.Run("Role check re-queries storage every time", func(t *testing.T) {
		mockRepo := &mocks.MockAdminRepository{}
		mockRepo.On("HasRole", mock.Anything, accountID, model.RoleAdmin).
			Return(true, nil)
		s, _ := newTestAdminService(mockRepo)

		for i := 0; i < 3; i++ {
			assert.NoError(t, s.RequireAdminRole(context.Background(), accountID))
		}
		mockRepo.AssertNumberOfCalls(t, "HasRole", 3)
	})
}
