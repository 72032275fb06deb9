package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lumen-gallery/lumen-backend/internal/adapter/handler"
	"github.com/lumen-gallery/lumen-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine         *gin.Engine
	photoHandler   *handler.PhotoHandler
	processHandler *handler.ProcessHandler
	authMiddleware *middleware.AuthMiddleware
	logger         *zap.Logger
	staticRoot     string
}

type RouterConfig struct {
	PhotoHandler   *handler.PhotoHandler
	ProcessHandler *handler.ProcessHandler
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *zap.Logger
	Environment    string

	// StaticRoot, when set, serves stored files under /files. Used by the
	// local storage backend; S3 serves its own URLs.
	StaticRoot string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		photoHandler:   cfg.PhotoHandler,
		processHandler: cfg.ProcessHandler,
		authMiddleware: cfg.AuthMiddleware,
		logger:         cfg.Logger,
		staticRoot:     cfg.StaticRoot,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if r.staticRoot != "" {
		r.engine.Static("/files", r.staticRoot)
	}

	api := r.engine.Group("/api/v1")
	{
		collections := api.Group("/collections")
		collections.Use(r.authMiddleware.RequireAuth())
		{
			collections.POST("/:id/photos", r.photoHandler.Upload)
		}

		photos := api.Group("/photos")
		photos.Use(r.authMiddleware.RequireAuth())
		{
			photos.GET("/:id", r.photoHandler.Get)
			photos.DELETE("/:id", r.photoHandler.Delete)
			photos.POST("/:id/process", r.processHandler.Process)
		}

		process := api.Group("/process")
		process.Use(r.authMiddleware.RequireAuth())
		{
			process.GET("/presets", r.processHandler.Presets)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
