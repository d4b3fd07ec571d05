package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"AIV_training_backend/internal/model"
	"AIV_training_backend/internal/service"
	"AIV_training_backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAdminService struct {
	roleErr error
}

func (s *stubAdminService) SignUp(ctx context.Context, email, password string) (*model.AdminAccount, error) {
	return nil, nil
}

func (s *stubAdminService) SignIn(ctx context.Context, email, password string) (string, error) {
	return "", nil
}

func (s *stubAdminService) RequireAdminRole(ctx context.Context, accountID uuid.UUID) error {
	return s.roleErr
}

type stubDashboardService struct {
	listCalls int
}

func (s *stubDashboardService) ListSignups(ctx context.Context, query string) ([]*model.Signup, int, error) {
	s.listCalls++
	return []*model.Signup{}, 0, nil
}

func (s *stubDashboardService) Stats(ctx context.Context) (*model.SignupStats, error) {
	return &model.SignupStats{}, nil
}

func (s *stubDashboardService) Export(ctx context.Context) (string, []byte, error) {
	return "signups_2026-03-01.xlsx", []byte{}, nil
}

func setupAdminRouter(roleErr error) (*gin.Engine, *stubDashboardService, *auth.SessionAuth) {
	gin.SetMode(gin.TestMode)

	sessions := auth.NewSessionAuth("test-secret", time.Hour)
	dashboard := &stubDashboardService{}

	router := gin.New()
	NewAdminRoutes(router.Group("/api/v1"), dashboard, &stubAdminService{roleErr: roleErr}, sessions)

	return router, dashboard, sessions
}

func TestAdminRoutes_ListSignups(t *testing.T) {
	t.Run("No token", func(t *testing.T) {
		router, dashboard, _ := setupAdminRouter(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/signups", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Zero(t, dashboard.listCalls)
	})

	t.Run("Authenticated but not admin", func(t *testing.T) {
		router, dashboard, sessions := setupAdminRouter(service.ErrAccessDenied)

		token, err := sessions.GenerateToken(uuid.New())
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/signups", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Zero(t, dashboard.listCalls)
	})

	t.Run("Authorized admin", func(t *testing.T) {
		router, dashboard, sessions := setupAdminRouter(nil)

		token, err := sessions.GenerateToken(uuid.New())
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/signups", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, dashboard.listCalls)
	})
}
