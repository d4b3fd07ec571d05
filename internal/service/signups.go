package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"AIV_training_backend/internal/model"
	"AIV_training_backend/internal/repository"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type PaymentConfig struct {
	URL           string
	RedirectDelay time.Duration
}

type SignupService struct {
	repo    SignupRepository
	payment PaymentConfig
}

func NewSignupService(repo SignupRepository, payment PaymentConfig) *SignupService {
	return &SignupService{
		repo:    repo,
		payment: payment,
	}
}

type RegistrationInput struct {
	FullName     string
	Email        string
	ReferralCode string
	AcceptTerms  bool
}

type RegistrationResult struct {
	Signup        *model.Signup
	PaymentURL    string
	RedirectDelay time.Duration
}

// Reserve records an email-only signup from the landing page dialog.
func (s *SignupService) Reserve(ctx context.Context, email string) (*model.Signup, error) {
	email, err := validateEmail(email)
	if err != nil {
		return nil, err
	}

	signup := &model.Signup{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateSignup(ctx, signup); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create signup: %w", err)
	}

	return signup, nil
}

// Register records a full registration. The paid flow requires name,
// referral code ("1" if not referred) and accepted terms.
func (s *SignupService) Register(ctx context.Context, input RegistrationInput) (*RegistrationResult, error) {
	fullName := strings.TrimSpace(input.FullName)
	if len(fullName) < 2 {
		return nil, &ValidationError{Message: "Full name must be at least 2 characters"}
	}
	if len(fullName) > 100 {
		return nil, &ValidationError{Message: "Full name must be at most 100 characters"}
	}

	email, err := validateEmail(input.Email)
	if err != nil {
		return nil, err
	}

	referralCode := strings.TrimSpace(input.ReferralCode)
	if len(referralCode) < 1 {
		return nil, &ValidationError{Message: "Please enter a referral code or 1 if not referred"}
	}
	if len(referralCode) > 50 {
		return nil, &ValidationError{Message: "Referral code must be at most 50 characters"}
	}

	if !input.AcceptTerms {
		return nil, &ValidationError{Message: "You must accept the Terms and Conditions"}
	}

	signup := &model.Signup{
		ID:           uuid.New(),
		Email:        email,
		FullName:     &fullName,
		ReferralCode: &referralCode,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateSignup(ctx, signup); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return &RegistrationResult{
		Signup:        signup,
		PaymentURL:    s.payment.URL,
		RedirectDelay: s.payment.RedirectDelay,
	}, nil
}

func validateEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) > 255 {
		return "", &ValidationError{Message: "Email must be at most 255 characters"}
	}
	if !emailPattern.MatchString(email) {
		return "", &ValidationError{Message: "Please enter a valid email address"}
	}
	return email, nil
}
