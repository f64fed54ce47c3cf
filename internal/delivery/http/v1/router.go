package v1

import (
	"time"

	"go-jobmarket-backend/config"
	"go-jobmarket-backend/internal/delivery/http/middleware"
	"go-jobmarket-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Auth           *middleware.Authenticator
	ApplicationUC  domain.ApplicationUsecase
	NotificationUC domain.NotificationUsecase
	FavoriteUC     domain.FavoriteUsecase
	VacancyUC      domain.VacancyUsecase
	AnalyticsUC    domain.AnalyticsUsecase
	ResumeUC       domain.ResumeUsecase
	CompanyUC      domain.CompanyUsecase
	Health         HealthChecker
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	if deps.Config.MetricsEnabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window),
	))

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := v1.Group("")
	public.Use(deps.Auth.Optional())

	protected := v1.Group("")
	protected.Use(deps.Auth.Required(), middleware.CSRFMiddleware())

	staff := protected.Group("")
	staff.Use(middleware.RequireRole(domain.RoleHR, domain.RoleAdmin))

	writes := middleware.RateLimitMiddleware(middleware.WriteRateLimitConfig(window))

	NewHealthHandler(public, deps.Health)
	NewVacancyHandler(public, protected, deps.VacancyUC)
	NewFavoriteHandler(public, protected, deps.FavoriteUC)
	NewCompanyHandler(public, protected, writes, deps.CompanyUC)
	NewApplicationHandler(protected, writes, deps.ApplicationUC)
	NewNotificationHandler(protected, deps.NotificationUC)
	NewResumeHandler(protected, deps.ResumeUC)
	NewAnalyticsHandler(staff, deps.AnalyticsUC)

	return r
}
