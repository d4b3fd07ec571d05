package middleware

import (
	"errors"
	"net/http"

	"AIV_training_backend/internal/service"
	"AIV_training_backend/pkg/auth"
	"AIV_training_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Authorization struct {
	adminService service.AdminServiceI
}

func NewAuthorization(adminService service.AdminServiceI) *Authorization {
	return &Authorization{
		adminService: adminService,
	}
}

// AdminOnly re-verifies the admin role against the database on every
// request. The session token alone never grants dashboard access.
func (a *Authorization) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Logger()

		value, exists := c.Get(auth.ContextAccountID)
		if !exists {
			log.Error("account id not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		accountID, ok := value.(uuid.UUID)
		if !ok {
			log.Error("invalid type assertion for account id")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		err := a.adminService.RequireAdminRole(c.Request.Context(), accountID)
		if err != nil {
			if errors.Is(err, service.ErrAccessDenied) {
				log.Info("unauthorized access attempt to admin endpoint",
					zap.String("account_id", accountID.String()))
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
				return
			}
			log.Error("failed to check admin role", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set("is_admin", true)
		c.Next()
	}
}
