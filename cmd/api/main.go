package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobmarket-backend/config"
	_ "go-jobmarket-backend/docs" // Important for Swagger
	"go-jobmarket-backend/internal/delivery/http/middleware"
	v1 "go-jobmarket-backend/internal/delivery/http/v1"
	"go-jobmarket-backend/internal/repository/postgres"
	"go-jobmarket-backend/internal/usecase"
	"go-jobmarket-backend/pkg/auth"
	"go-jobmarket-backend/pkg/database"
	"go-jobmarket-backend/pkg/logger"
	"go-jobmarket-backend/pkg/metrics"
	"go-jobmarket-backend/pkg/notify"
	"go-jobmarket-backend/pkg/redis"
	"go-jobmarket-backend/pkg/validation"
)

// @title           Job Marketplace API
// @version         1.0
// @description     Vacancies, applications with a one-way decision flow, favorites, notifications and analytics.
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
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job marketplace backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.BootstrapSchema {
		if err := database.EnsureSchema(context.Background(), dbPool); err != nil {
			logger.Log.Error("Failed to apply schema", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Schema applied")
	}

	// 4. Setup Redis (optional: rate limiting falls back to memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			defer redis.Close()
		}
	}

	// 5. Setup notification delivery
	publisher := newPublisher(cfg)
	defer publisher.Close()

	if cfg.MetricsEnabled {
		metrics.Init()
	}

	// 6. Setup Store & UseCases
	store := postgres.NewStore(dbPool)
	txManager := postgres.NewTxManager(dbPool)
	validate := validation.New()

	notificationSvc := usecase.NewNotificationService(store, txManager, publisher)
	authUC := usecase.NewAuthUsecase(store)
	applicationUC := usecase.NewApplicationUsecase(store, txManager, notificationSvc)
	vacancyUC := usecase.NewVacancyUsecase(store, txManager, validate)
	favoriteUC := usecase.NewFavoriteUsecase(store)
	analyticsUC := usecase.NewAnalyticsUsecase(store)
	resumeUC := usecase.NewResumeUsecase(store, txManager, validate, cfg.ResumeLimit)
	companyUC := usecase.NewCompanyUsecase(store, validate)

	checks := map[string]usecase.HealthCheck{"database": dbPool.Ping}
	if redis.Client() != nil {
		checks["redis"] = redis.HealthCheck
	}
	healthUC := usecase.NewHealthUsecase(checks)

	// 7. Setup Auth (HS256 secret and/or RS256 JWKS)
	var jwksProvider *auth.Provider
	if cfg.JWKSURL != "" {
		jwksProvider = auth.NewProvider(cfg.JWKSURL)
	}
	authenticator := middleware.NewAuthenticator(jwksProvider, cfg.JWTSecret, authUC)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		Auth:           authenticator,
		ApplicationUC:  applicationUC,
		NotificationUC: notificationSvc,
		FavoriteUC:     favoriteUC,
		VacancyUC:      vacancyUC,
		AnalyticsUC:    analyticsUC,
		ResumeUC:       resumeUC,
		CompanyUC:      companyUC,
		Health:         healthUC,
		Config:         cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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

func newPublisher(cfg *config.Config) notify.Publisher {
	switch cfg.NotifyBackend {
	case config.NotifyRedis:
		if client := redis.Client(); client != nil {
			logger.Log.Info("Notification delivery via redis", "channel", cfg.NotifyChannel)
			return notify.NewRedisPublisher(client, cfg.NotifyChannel)
		}
		logger.Log.Warn("NOTIFY_BACKEND=redis but redis is unavailable, delivery disabled")
	case config.NotifyKafka:
		p, err := notify.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err == nil {
			logger.Log.Info("Notification delivery via kafka", "topic", cfg.KafkaTopic)
			return p
		}
		logger.Log.Warn("Kafka producer unavailable, delivery disabled", "error", err)
	}
	return notify.NoopPublisher{}
}
