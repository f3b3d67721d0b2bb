package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/content"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/objectstore"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/database"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/metrics"
	"portfolio-backend/pkg/ratelimit"
	"portfolio-backend/pkg/redis"
	"portfolio-backend/pkg/storage"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "email_provider", cfg.EmailProvider)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)
	checks := map[string]usecase.PingFunc{}

	// 3. Rate limiter: Redis when configured, memory always as fallback
	window := time.Duration(cfg.ContactRateWindowSeconds) * time.Second
	memLimiter := ratelimit.NewMemoryLimiter(cfg.ContactRateLimit, window, time.Now)
	memLimiter.StartJanitor(ctx, 5*time.Minute)

	var contactLimiter ratelimit.Limiter = memLimiter
	redisClient, err := redis.Connect(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Warn("Redis not configured, rate limiting is per-instance")
	case err != nil:
		logger.Log.Error("Redis unavailable at startup, rate limiting is per-instance", "error", err)
	default:
		defer redisClient.Close()
		redisLimiter := ratelimit.NewRedisLimiter(redisClient, "ratelimit:contact:", cfg.ContactRateLimit, window, time.Now)
		contactLimiter = ratelimit.NewFallbackLimiter(redisLimiter, memLimiter, func(err error) {
			m.ObserveLimiterFallback()
			logger.Log.Warn("Redis rate limit failed, using in-memory state", "error", err)
		})
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	// 4. Optional lead archive
	var leadRepo domain.LeadRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database, leads will not be archived", "error", err)
		} else {
			defer dbPool.Close()
			leadRepo = postgres.NewLeadRepository(dbPool)
			checks["database"] = dbPool.Ping
		}
	}
	if leadRepo == nil && cfg.S3Bucket != "" {
		s3Client, err := storage.NewS3Client(ctx, storage.S3Config{
			Provider:        storage.S3Provider(cfg.S3Provider),
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			logger.Log.Error("Failed to configure object storage, leads will not be archived", "error", err)
		} else {
			leadRepo = objectstore.NewLeadRepository(s3Client, cfg.S3Bucket, "leads/")
			logger.Log.Info("Archiving leads to object storage", "bucket", cfg.S3Bucket, "provider", cfg.S3Provider)
		}
	}

	// 5. Setup Email Dispatcher
	dispatcher, err := email.NewDispatcher(ctx, cfg, logger.Log)
	if err != nil {
		logger.Log.Error("Failed to configure email dispatcher", "error", err)
		os.Exit(1)
	}

	// 6. Project content
	store, err := content.NewStore(cfg.ContentDir, logger.Log)
	if err != nil {
		logger.Log.Error("Failed to load project content", "dir", cfg.ContentDir, "error", err)
		os.Exit(1)
	}
	if cfg.ContentWatch {
		go func() {
			if err := store.Watch(ctx); err != nil {
				logger.Log.Error("Content watcher stopped", "error", err)
			}
		}()
	}

	// 7. Setup UseCases
	contactUC := usecase.NewContactUsecase(dispatcher, leadRepo, validation.New(), usecase.ContactConfig{
		From:     cfg.ContactFrom,
		To:       cfg.ContactTo,
		SiteName: cfg.SiteName,
	}, m, logger.Log)
	projectUC := usecase.NewProjectUsecase(store)
	catalogUC := usecase.NewCatalogUsecase()
	healthUC := usecase.NewHealthUsecase(checks)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:      contactUC,
		ProjectUC:      projectUC,
		CatalogUC:      catalogUC,
		HealthUC:       healthUC,
		ContactLimiter: contactLimiter,
		Metrics:        m,
		Gatherer:       prometheus.DefaultGatherer,
		Logger:         logger.Log,
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
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
