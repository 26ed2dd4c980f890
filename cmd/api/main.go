package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-talent-backend/config"
	_ "go-talent-backend/docs" // Important for Swagger
	v1 "go-talent-backend/internal/delivery/http/v1"
	"go-talent-backend/internal/repository/postgres"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/auth"
	"go-talent-backend/pkg/database"
	"go-talent-backend/pkg/logger"
	"go-talent-backend/pkg/redis"
	"go-talent-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Talent Profile Backend API
// @version         1.0
// @description     Talent-profile management backend: profiles, experiences, certificates and recommendations.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting talent backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	recRepo := postgres.NewRecommendationRepository(dbPool)
	expRepo := postgres.NewExperienceRepository(dbPool)
	certRepo := postgres.NewCertificateRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLMin)*time.Minute)

	authUC := usecase.NewAuthUsecase(userRepo, tokens, validate)
	userUC := usecase.NewUserUsecase(userRepo, validate)
	recUC := usecase.NewRecommendationUsecase(recRepo, userRepo, validate)
	expUC := usecase.NewExperienceUsecase(expRepo, userRepo, validate)
	certUC := usecase.NewCertificateUsecase(certRepo, userRepo, validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		RecommendationUC: recUC,
		ExperienceUC:     expUC,
		CertificateUC:    certUC,
		Tokens:           tokens,
		Config:           cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
