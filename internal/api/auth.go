package api

import (
	"errors"
	"net/http"

	"AIV_training_backend/internal/service"
	"AIV_training_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type authRoutes struct {
	as service.AdminServiceI
}

func NewAuthRoutes(handler *gin.RouterGroup, as service.AdminServiceI) {
	r := &authRoutes{as: as}
	h := handler.Group("/auth")
	{
		h.POST("/signup", r.SignUp)
		h.POST("/login", r.SignIn)
	}
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *authRoutes) SignUp(c *gin.Context) {
	log := logger.Logger()

	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	account, err := r.as.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
		case errors.Is(err, service.ErrAccountAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		default:
			log.Error("failed to create account", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    account.ID,
		"email": account.Email,
	})
}

func (r *authRoutes) SignIn(c *gin.Context) {
	log := logger.Logger()

	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := r.as.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		default:
			log.Error("failed to sign in", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
