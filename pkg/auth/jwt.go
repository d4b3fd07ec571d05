package auth

import (
	"net/http"
	"strings"
	"time"

	"AIV_training_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ContextAccountID is the gin context key holding the authenticated account id.
const ContextAccountID = "account_id"

type SessionAuth struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewSessionAuth(secret string, tokenTTL time.Duration) *SessionAuth {
	return &SessionAuth{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

type claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

func (a *SessionAuth) GenerateToken(accountID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.tokenTTL)),
		},
		AccountID: accountID.String(),
	})

	return token.SignedString(a.secret)
}

func (a *SessionAuth) ParseToken(tokenString string) (uuid.UUID, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, jwt.ErrTokenUnverifiable
	}

	return uuid.Parse(c.AccountID)
}

// SessionAuthMiddleware requires a "Bearer <token>" Authorization header and
// stores the token's account id in the request context.
func (a *SessionAuth) SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Logger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Info("missing authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Info("invalid authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}

		accountID, err := a.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.Info("invalid session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			return
		}

		c.Set(ContextAccountID, accountID)
		c.Next()
	}
}
