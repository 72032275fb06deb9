package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lumen-gallery/lumen-backend/internal/adapter/handler"
	"github.com/lumen-gallery/lumen-backend/internal/adapter/repository/postgres"
	adapterstorage "github.com/lumen-gallery/lumen-backend/internal/adapter/storage"
	"github.com/lumen-gallery/lumen-backend/internal/infrastructure/auth"
	"github.com/lumen-gallery/lumen-backend/internal/infrastructure/config"
	"github.com/lumen-gallery/lumen-backend/internal/infrastructure/database"
	"github.com/lumen-gallery/lumen-backend/internal/infrastructure/middleware"
	"github.com/lumen-gallery/lumen-backend/internal/infrastructure/observability"
	"github.com/lumen-gallery/lumen-backend/internal/infrastructure/server"
	"github.com/lumen-gallery/lumen-backend/internal/infrastructure/storage"
	"github.com/lumen-gallery/lumen-backend/internal/media/adjust"
	"github.com/lumen-gallery/lumen-backend/internal/media/derivative"
	"github.com/lumen-gallery/lumen-backend/internal/media/metadata"
	"github.com/lumen-gallery/lumen-backend/internal/media/rawpreview"
	"github.com/lumen-gallery/lumen-backend/internal/usecase/ingest"
	"github.com/lumen-gallery/lumen-backend/internal/usecase/process"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Repositories
	photoRepo := postgres.NewPhotoRepo(pool)
	collectionRepo := postgres.NewCollectionRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)

	var store adapterstorage.VariantStore
	var staticRoot string
	switch cfg.Storage.Backend {
	case "s3":
		store, err = storage.NewS3Store(cfg.Storage.S3)
		if err != nil {
			logger.Fatal("failed to create s3 store", zap.Error(err))
		}
	default:
		store = storage.NewLocalStore(cfg.Storage.LocalRoot, cfg.Storage.PublicURL)
		staticRoot = cfg.Storage.LocalRoot
	}

	// Media pipeline
	rawDecoder := rawpreview.NewDecoder()
	extractor := metadata.NewExtractor(logger)
	generator := derivative.NewGenerator(rawDecoder, logger)
	renderer := adjust.NewRenderer(rawDecoder, logger)

	// Use cases
	ingestSvc := ingest.NewService(photoRepo, collectionRepo, store, extractor, generator, logger)
	processSvc := process.NewService(photoRepo, collectionRepo, store, renderer, generator, logger)

	// Handlers
	photoHandler := handler.NewPhotoHandler(ingestSvc, cfg.Upload.MaxSize)
	processHandler := handler.NewProcessHandler(processSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		PhotoHandler:   photoHandler,
		ProcessHandler: processHandler,
		AuthMiddleware: authMiddleware,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
		StaticRoot:     staticRoot,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
