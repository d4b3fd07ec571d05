package api

import (
	"fmt"
	"net/http"

	"AIV_training_backend/internal/middleware"
	"AIV_training_backend/internal/service"
	"AIV_training_backend/pkg/auth"
	"AIV_training_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type adminRoutes struct {
	ds service.DashboardServiceI
}

func NewAdminRoutes(handler *gin.RouterGroup, ds service.DashboardServiceI, as service.AdminServiceI, sessions *auth.SessionAuth) {
	r := &adminRoutes{ds: ds}
	authz := middleware.NewAuthorization(as)

	h := handler.Group("/admin")
	h.Use(sessions.SessionAuthMiddleware())
	h.Use(authz.AdminOnly())
	{
		h.GET("/signups", r.ListSignups)
		h.GET("/signups/stats", r.GetStats)
		h.GET("/signups/export", r.ExportSignups)
	}
}

func (r *adminRoutes) ListSignups(c *gin.Context) {
	log := logger.Logger()

	signups, total, err := r.ds.ListSignups(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Error("failed to list signups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load signups"})
		return
	}

	out := make([]gin.H, len(signups))
	for i, s := range signups {
		out[i] = gin.H{
			"id":            s.ID,
			"email":         s.Email,
			"full_name":     s.FullName,
			"referral_code": s.ReferralCode,
			"created_at":    s.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"signups": out,
		"total":   total,
	})
}

func (r *adminRoutes) GetStats(c *gin.Context) {
	log := logger.Logger()

	stats, err := r.ds.Stats(c.Request.Context())
	if err != nil {
		log.Error("failed to get signup stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load signups"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    stats.Total,
		"today":    stats.Today,
		"week":     stats.Week,
		"referred": stats.Referred,
	})
}

func (r *adminRoutes) ExportSignups(c *gin.Context) {
	log := logger.Logger()

	filename, data, err := r.ds.Export(c.Request.Context())
	if err != nil {
		log.Error("failed to export signups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export signups"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
