package service

import (
	"context"
	"errors"

	"AIV_training_backend/internal/model"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyRegistered = errors.New("this email is already registered")
	ErrAccountAlreadyExists   = errors.New("an account with this email already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAccessDenied           = errors.New("admin access required")
)

// ValidationError is returned before any storage call is made. The message
// is safe to show to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type Service struct {
	*SignupService
	*AdminService
	*DashboardService
}

func NewService(signupService *SignupService, adminService *AdminService, dashboardService *DashboardService) *Service {
	return &Service{
		SignupService:    signupService,
		AdminService:     adminService,
		DashboardService: dashboardService,
	}
}

type SignupServiceI interface {
	Reserve(ctx context.Context, email string) (*model.Signup, error)
	Register(ctx context.Context, input RegistrationInput) (*RegistrationResult, error)
}

type AdminServiceI interface {
	SignUp(ctx context.Context, email, password string) (*model.AdminAccount, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	RequireAdminRole(ctx context.Context, accountID uuid.UUID) error
}

type DashboardServiceI interface {
	ListSignups(ctx context.Context, query string) ([]*model.Signup, int, error)
	Stats(ctx context.Context) (*model.SignupStats, error)
	Export(ctx context.Context) (string, []byte, error)
}

type SignupRepository interface {
	CreateSignup(ctx context.Context, signup *model.Signup) error
	ListSignups(ctx context.Context) ([]*model.Signup, error)
}

type AdminRepository interface {
	CreateAdminAccount(ctx context.Context, account *model.AdminAccount) error
	GetAdminAccountByEmail(ctx context.Context, email string) (*model.AdminAccount, error)
	HasRole(ctx context.Context, accountID uuid.UUID, role string) (bool, error)
	GrantRole(ctx context.Context, accountID uuid.UUID, role string) error
}
