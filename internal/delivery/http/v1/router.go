package v1

import (
	"net/http"
	"time"

	"go-talent-backend/config"
	"go-talent-backend/internal/delivery/http/middleware"
	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	UserUC           domain.UserUsecase
	RecommendationUC domain.RecommendationUsecase
	ExperienceUC     domain.ExperienceUsecase
	CertificateUC    domain.CertificateUsecase
	Tokens           *auth.TokenManager
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.GlobalRateLimit(deps.Config.RateLimitGlobalThreshold, window))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	loginLimiter := middleware.LoginRateLimit(deps.Config.RateLimitLoginThreshold, window)
	NewAuthHandler(v1, protected, deps.AuthUC, loginLimiter)
	NewUserHandler(v1, protected, deps.UserUC)
	NewRecommendationHandler(protected, deps.RecommendationUC)
	NewExperienceHandler(protected, deps.ExperienceUC)
	NewCertificateHandler(protected, deps.CertificateUC)

	return r
}
