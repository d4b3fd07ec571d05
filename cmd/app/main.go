package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"AIV_training_backend/internal/api"
	"AIV_training_backend/internal/repository"
	"AIV_training_backend/internal/service"
	"AIV_training_backend/pkg/auth"
	"AIV_training_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	countdownTarget, err := cfg.Countdown.TargetTime()
	if err != nil {
		zapLogger.Fatal("Failed to parse countdown target", zap.Error(err))
	}

	sessions := auth.NewSessionAuth(cfg.Session.Secret, cfg.Session.TokenTTL)

	signupService := service.NewSignupService(repo, service.PaymentConfig{
		URL:           cfg.Payment.URL,
		RedirectDelay: time.Duration(cfg.Payment.RedirectDelayMS) * time.Millisecond,
	})
	adminService := service.NewAdminService(repo, sessions)
	dashboardService := service.NewDashboardService(repo)

	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api/v1")
	api.NewSignupRoutes(a, signupService, countdownTarget)
	api.NewAuthRoutes(a, adminService)
	api.NewAdminRoutes(a, dashboardService, adminService, sessions)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
