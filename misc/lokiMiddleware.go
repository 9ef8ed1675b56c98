package misc

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// LokiMiddlewareConfig configures the Loki logging middleware.
type LokiMiddlewareConfig struct {
	Skip func(c *fiber.Ctx) bool
}

// NewLokiMiddleware creates a Fiber middleware that logs requests to Loki.
// Logging happens after the response on a separate goroutine so it can't
// add to request latency.
func NewLokiMiddleware(config LokiMiddlewareConfig) fiber.Handler {
	loki := GetLoki()

	return func(c *fiber.Ctx) error {
		if !loki.IsEnabled() {
			return c.Next()
		}

		if config.Skip != nil && config.Skip(c) {
			return c.Next()
		}

		start := time.Now()

		// Capture before c.Next() - fiber reuses the context afterwards.
		method := c.Method()
		path := c.Path()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		durationMs := float64(time.Since(start).Nanoseconds()) / 1e6

		go loki.LogRequest(method, path, status, durationMs)

		return err
	}
}
