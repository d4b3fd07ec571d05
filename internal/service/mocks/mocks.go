package mocks

import (
	"context"

	"AIV_training_backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSignupRepository struct {
	mock.Mock
}

func (m *MockSignupRepository) CreateSignup(ctx context.Context, signup *model.Signup) error {
	args := m.Called(ctx, signup)
	return args.Error(0)
}

func (m *MockSignupRepository) ListSignups(ctx context.Context) ([]*model.Signup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Signup), args.Error(1)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) CreateAdminAccount(ctx context.Context, account *model.AdminAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAdminRepository) GetAdminAccountByEmail(ctx context.Context, email string) (*model.AdminAccount, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminAccount), args.Error(1)
}

func (m *MockAdminRepository) HasRole(ctx context.Context, accountID uuid.UUID, role string) (bool, error) {
	args := m.Called(ctx, accountID, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepository) GrantRole(ctx context.Context, accountID uuid.UUID, role string) error {
	args := m.Called(ctx, accountID, role)
	return args.Error(0)
}
