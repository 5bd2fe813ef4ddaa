// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Surfaces of the catalog, logged with every request.
const (
	SurfaceAPI    = "api"
	SurfacePage   = "page"
	SurfaceStatic = "static"
)

// Surface classifies a request path.
func Surface(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/"):
		return SurfaceAPI
	case strings.HasPrefix(path, "/static/"):
		return SurfaceStatic
	default:
		return SurfacePage
	}
}

// Logger returns a middleware that logs HTTP requests.
// Static asset misses are logged at Debug.
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Process request
		err := c.Next()

		// Log request
		duration := time.Since(start)
		status := c.Response().StatusCode()

		surface := Surface(c.Path())

		fields := []zap.Field{
			zap.String("surface", surface),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("query", string(c.Request().URI().QueryString())),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		}

		if rid := c.GetRespHeader(fiber.HeaderXRequestID); rid != "" {
			fields = append(fields, zap.String("request_id", rid))
		}

		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		switch {
		case surface == SurfaceStatic && status < 500:
			logger.Debug("asset served", fields...)
		case status >= 500:
			logger.Error("request failed", fields...)
		case status >= 400:
			logger.Warn("request error", fields...)
		default:
			logger.Debug("request completed", fields...)
		}

		return err
	}
}
