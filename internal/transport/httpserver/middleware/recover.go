package middleware

import (
	"runtime/debug"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resource-catalog-service/internal/transport/httpserver/dto"
)

// Recover returns a middleware that recovers from panics.
// API routes answer with a JSON error body, pages with plain text.
func Recover(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("error", r),
					zap.String("stack", string(debug.Stack())),
					zap.String("path", c.Path()),
					zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
				)

				c.Status(fiber.StatusInternalServerError)
				if strings.HasPrefix(c.Path(), "/api/") {
					err = c.JSON(dto.ErrorResponse{
						Error: "internal server error",
						Code:  "PANIC",
					})
					return
				}
				err = c.SendString("Erreur interne du serveur.")
			}
		}()

		return c.Next()
	}
}
