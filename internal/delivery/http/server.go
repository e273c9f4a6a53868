package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/travelog-service/internal/config"
	"github.com/travelog-service/internal/delivery/http/handler"
	"github.com/travelog-service/internal/delivery/http/middleware"
	"github.com/travelog-service/internal/pkg/errors"
	"github.com/travelog-service/internal/pkg/utils"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	entityHandler    *handler.EntityHandler
	searchHandler    *handler.SearchHandler
	travelLogHandler *handler.TravelLogHandler
	bucketHandler    *handler.BucketListHandler
	profileHandler   *handler.ProfileHandler
	flagHandler      *handler.FlagHandler
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	entityHandler *handler.EntityHandler,
	searchHandler *handler.SearchHandler,
	travelLogHandler *handler.TravelLogHandler,
	bucketHandler *handler.BucketListHandler,
	profileHandler *handler.ProfileHandler,
	flagHandler *handler.FlagHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Travelog Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		entityHandler:    entityHandler,
		searchHandler:    searchHandler,
		travelLogHandler: travelLogHandler,
		bucketHandler:    bucketHandler,
		profileHandler:   profileHandler,
		flagHandler:      flagHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(middleware.Identity())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Search routes
	api.Get("/search", s.searchHandler.Search)
	api.Post("/search/advanced", s.searchHandler.AdvancedSearch)

	// Entity catalogue routes
	api.Get("/types", s.entityHandler.Types)
	api.Get("/entities/:type", s.entityHandler.ListByType)
	api.Get("/entities/:type/:code", s.entityHandler.Resolve)
	api.Get("/entities/:type/:code/related", s.entityHandler.RelatedTypes)
	api.Get("/entities/:type/:code/:rel", s.entityHandler.RelatedByType)

	// Flag refresh is queued for the background worker
	api.Post("/entities/:id/flag", s.flagHandler.Refresh)

	// Travel log routes
	api.Get("/logs", s.travelLogHandler.List)
	api.Post("/logs", s.travelLogHandler.Create)
	api.Put("/logs/:id/notes", s.travelLogHandler.UpdateNotes)
	api.Get("/logs/checklist", s.travelLogHandler.Checklist)

	// Bucket list routes
	api.Get("/buckets", s.bucketHandler.List)
	api.Post("/buckets", s.bucketHandler.Create)
	api.Get("/buckets/:id", s.bucketHandler.Get)
	api.Post("/buckets/:id/entities", s.bucketHandler.AddEntities)
	api.Delete("/buckets/:id/entities/:entity_id", s.bucketHandler.RemoveEntity)

	// Profile routes
	api.Get("/profile", s.profileHandler.Get)
	api.Put("/profile/access", s.profileHandler.SetAccess)
	api.Get("/profiles", s.profileHandler.Public)
	api.Get("/profiles/:user/history", s.profileHandler.History)
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler renders errors that escape the handlers, keeping the
// envelope identical to utils.SendError.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(utils.ErrorResponse{
				Error: errors.New("HTTP_ERROR", e.Message, e.Code),
			})
		}

		return utils.SendError(c, err)
	}
}
