package main

// @title Travelog Service API
// @version 1.0.0
// @description Core service for the travelogue application. Serves the
// @description geographic entity catalogue (continents, countries, states,
// @description cities, airports, heritage sites, parks and landmarks), text
// @description search, travel logs, bucket lists and profile history exports.

// @contact.name API Support
// @contact.email support@travelog-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/travelog-service/docs"
	"github.com/travelog-service/internal/config"
	httpDelivery "github.com/travelog-service/internal/delivery/http"
	"github.com/travelog-service/internal/delivery/http/handler"
	"github.com/travelog-service/internal/pkg/logger"
	"github.com/travelog-service/internal/repository/cache"
	"github.com/travelog-service/internal/repository/postgres"
	"github.com/travelog-service/internal/repository/redisstream"
	"github.com/travelog-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Travelog Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	entityRepo := postgres.NewEntityRepository(db)
	typeRepo := postgres.NewEntityTypeRepository(db)
	infoRepo := postgres.NewEntityInfoRepository(db)
	travelLogRepo := postgres.NewTravelLogRepository(db)
	bucketRepo := postgres.NewBucketListRepository(db, entityRepo)
	profileRepo := postgres.NewProfileRepository(db)
	flagRepo := postgres.NewFlagRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisstream.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	entityUC := usecase.NewEntityUseCase(entityRepo, typeRepo, infoRepo, log)
	searchUC := usecase.NewSearchUseCase(entityRepo, cacheRepo, log, cfg.Cache.SearchCacheTTL)
	travelLogUC := usecase.NewTravelLogUseCase(travelLogRepo, entityRepo, log)
	bucketUC := usecase.NewBucketListUseCase(bucketRepo, travelLogRepo, log)
	profileUC := usecase.NewProfileUseCase(profileRepo, travelLogRepo, entityRepo, log)
	flagUC := usecase.NewFlagUseCase(flagRepo, entityRepo, streamRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	entityHandler := handler.NewEntityHandler(entityUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)
	travelLogHandler := handler.NewTravelLogHandler(travelLogUC, log)
	bucketHandler := handler.NewBucketListHandler(bucketUC, log)
	profileHandler := handler.NewProfileHandler(profileUC, log)
	flagHandler := handler.NewFlagHandler(flagUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		entityHandler,
		searchHandler,
		travelLogHandler,
		bucketHandler,
		profileHandler,
		flagHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
}
