// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
)

// ReadinessTimeout bounds the store check behind /readyz.
const ReadinessTimeout = 2 * time.Second

// ReadinessCheck reports whether the store can serve reads.
type ReadinessCheck func(ctx context.Context) error

// NewHealthCheck creates a Fiber healthcheck middleware with Kubernetes-style endpoints.
//
// Endpoints:
//   - GET /livez  - Liveness probe (app is running)
//   - GET /readyz - Readiness probe (store reachable)
//
// A nil check means the store is not configured and the app is never ready.
// This middleware should be registered BEFORE other routes.
func NewHealthCheck(check ReadinessCheck) fiber.Handler {
	return healthcheck.New(healthcheck.Config{
		// Liveness probe - is the application running?
		LivenessEndpoint: "/livez",
		LivenessProbe: func(_ *fiber.Ctx) bool {
			return true
		},

		// Readiness probe - is the application ready to serve traffic?
		ReadinessEndpoint: "/readyz",
		ReadinessProbe: func(c *fiber.Ctx) bool {
			if check == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(c.UserContext(), ReadinessTimeout)
			defer cancel()

			return check(ctx) == nil
		},
	})
}
