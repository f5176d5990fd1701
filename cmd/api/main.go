package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-careers-backend/config"
	v1 "go-careers-backend/internal/delivery/http/v1"
	"go-careers-backend/internal/repository/postgres"
	"go-careers-backend/internal/usecase"
	"go-careers-backend/pkg/auth"
	"go-careers-backend/pkg/blob"
	"go-careers-backend/pkg/database"
	"go-careers-backend/pkg/logger"
	"go-careers-backend/pkg/redis"
	"go-careers-backend/pkg/validation"
)

func main() {
	// 1. Load Config (missing signing key is fatal here, not per request)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting careers backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresPool(context.Background(), cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}

	// 5. Setup Blob Storage
	var blobStore blob.Store
	if cfg.BlobConfigured() {
		blobStore, err = blob.NewS3Store(context.Background(), blob.S3Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			logger.Log.Error("Failed to configure blob storage", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Log.Warn("Blob storage not configured - resume uploads will be unavailable")
	}

	// 6. Setup Repositories
	adminRepo := postgres.NewAdminRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 7. Setup Services and UseCases
	tokens := auth.NewTokenService(cfg.JWTSecret)
	validate := validation.New()

	authUC := usecase.NewAuthUsecase(adminRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo, applicationRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		Tokens:        tokens,
		BlobStore:     blobStore,
		Validate:      validate,
		Config:        cfg,
	})

	// 9. Start Server
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
