package api

import (
	"errors"
	"net/http"
	"time"

	"AIV_training_backend/internal/service"
	"AIV_training_backend/pkg/countdown"
	"AIV_training_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type signupRoutes struct {
	ss     service.SignupServiceI
	target time.Time
}

func NewSignupRoutes(handler *gin.RouterGroup, ss service.SignupServiceI, countdownTarget time.Time) {
	r := &signupRoutes{ss: ss, target: countdownTarget}

	handler.POST("/signups", r.CreateSignup)
	handler.POST("/registrations", r.Register)
	handler.GET("/countdown", r.GetCountdown)
}

type CreateSignupRequest struct {
	Email string `json:"email"`
}

func (r *signupRoutes) CreateSignup(c *gin.Context) {
	log := logger.Logger()

	var req CreateSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	signup, err := r.ss.Reserve(c.Request.Context(), req.Email)
	if err != nil {
		respondSignupError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      signup.ID,
		"email":   signup.Email,
		"message": "You're registered! Check your email for details.",
	})
}

type RegisterRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	ReferralCode string `json:"referral_code"`
	AcceptTerms  bool   `json:"accept_terms"`
}

func (r *signupRoutes) Register(c *gin.Context) {
	log := logger.Logger()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := r.ss.Register(c.Request.Context(), service.RegistrationInput{
		FullName:     req.FullName,
		Email:        req.Email,
		ReferralCode: req.ReferralCode,
		AcceptTerms:  req.AcceptTerms,
	})
	if err != nil {
		respondSignupError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":                result.Signup.ID,
		"email":             result.Signup.Email,
		"message":           "Registration successful! Redirecting to payment...",
		"payment_url":       result.PaymentURL,
		"redirect_after_ms": result.RedirectDelay.Milliseconds(),
	})
}

// respondSignupError maps the signup error taxonomy onto HTTP statuses:
// validation failures and the duplicate-email conflict get specific
// messages, everything else a generic retry message.
func respondSignupError(c *gin.Context, err error) {
	log := logger.Logger()

	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
		return
	}

	if errors.Is(err, service.ErrEmailAlreadyRegistered) {
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already registered!"})
		return
	}

	log.Error("signup failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
}

func (r *signupRoutes) GetCountdown(c *gin.Context) {
	left := countdown.Breakdown(r.target, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"target":  r.target,
		"days":    left.Days,
		"hours":   left.Hours,
		"minutes": left.Minutes,
		"seconds": left.Seconds,
	})
}
