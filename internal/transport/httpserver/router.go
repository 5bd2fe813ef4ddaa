// Package httpserver provides HTTP server and routing.
package httpserver

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"resource-catalog-service/internal/app/service"
	"resource-catalog-service/internal/transport/httpserver/dto"
	"resource-catalog-service/internal/transport/httpserver/handler"
	"resource-catalog-service/internal/transport/httpserver/middleware"
	"resource-catalog-service/internal/transport/httpserver/view"
	"resource-catalog-service/internal/validator"
	"resource-catalog-service/web"
)

const appName = "resource-catalog-service"

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         int
	BodyLimit    int
	CacheControl string // Cache-Control of successful API responses
}

// Server wraps Fiber app with handlers.
type Server struct {
	App    *fiber.App
	Logger *zap.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	cfg ServerConfig,
	catalogSvc *service.CatalogService,
	v *validator.Validator,
	logger *zap.Logger,
) *Server {
	app := newApp(cfg, catalogSvc.HealthCheck, logger)

	resourceHandler := handler.NewResourceHandler(catalogSvc, v, cfg.CacheControl, logger)
	pageHandler := handler.NewPageHandler(catalogSvc, v, logger)

	registerRoutes(app, resourceHandler, pageHandler)

	return &Server{
		App:    app,
		Logger: logger,
	}
}

// NewSetupServer creates a server for a process started without store
// configuration. Every page shows the setup screen and every API call fails
// with cfgErr.
func NewSetupServer(cfg ServerConfig, setup view.Setup, cfgErr error, logger *zap.Logger) *Server {
	app := newApp(cfg, nil, logger)

	setupHandler := handler.NewSetupHandler(setup, cfgErr)
	app.All("/api/*", setupHandler.API)
	app.Get("/*", setupHandler.Page)

	return &Server{
		App:    app,
		Logger: logger,
	}
}

// newApp builds the Fiber app with the template engine and the middleware
// shared by both server modes.
func newApp(cfg ServerConfig, ready middleware.ReadinessCheck, logger *zap.Logger) *fiber.App {
	// Templates are embedded in the binary
	engine := html.NewFileSystem(web.Templates(), ".html")
	engine.AddFuncMap(view.Funcs())

	app := fiber.New(fiber.Config{
		AppName:      appName,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler(logger),
		Views:        engine,
	})

	// Health check middleware MUST be registered BEFORE other middleware
	// for Kubernetes probes to work even during high load
	app.Use(middleware.NewHealthCheck(ready))

	// Global middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.Recover(logger))
	app.Use(middleware.Logger(logger))
	app.Use(compress.New())

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   web.Static(),
		MaxAge: 3600,
	}))

	// The JSON API is public and read-only
	app.Use("/api", cors.New(cors.Config{
		AllowMethods: "GET,HEAD,OPTIONS",
	}))

	return app
}

// registerRoutes sets up all routes.
func registerRoutes(
	app *fiber.App,
	resourceHandler *handler.ResourceHandler,
	pageHandler *handler.PageHandler,
) {
	// Health checks are handled by middleware (/livez, /readyz)

	// Pages (HTML)
	app.Get("/", pageHandler.Index)
	app.Get("/catalog", pageHandler.Catalog)
	app.Get("/catalog/results", pageHandler.Results)

	// API routes
	api := app.Group("/api")
	api.Get("/resources", resourceHandler.List)
	api.Get("/catalog", resourceHandler.Catalog)
}

// errorHandler returns a custom error handler that logs based on HTTP status code.
// 404s are logged at DEBUG level (expected client behavior), 4xx at WARN, 5xx at ERROR.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		switch {
		case code == fiber.StatusNotFound:
			logger.Debug("route not found",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
			)
		case code >= 500:
			logger.Error("server error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		case code >= 400:
			logger.Warn("client error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		default:
			logger.Error("unhandled error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		}

		return c.Status(code).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  errorCode(code),
		})
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	default:
		return "UNHANDLED_ERROR"
	}
}

// Start starts the HTTP server.
func (s *Server) Start(port int) error {
	s.Logger.Info("starting HTTP server", zap.Int("port", port))

	return s.App.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	s.Logger.Info("shutting down HTTP server")

	return s.App.Shutdown()
}
