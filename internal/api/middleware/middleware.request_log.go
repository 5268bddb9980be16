package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"fvs_dash/internal/logger"
)

// RequestLogMiddleware logs every request with its latency and status
// through the app logger. Paths in the logger's filter list are dropped by
// the filter hook, not here.
func RequestLogMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		entry := logger.WithRequest(c).WithFields(map[string]interface{}{
			"status":     c.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.WithError(err).Warn("Request failed")
		} else {
			entry.Info("Request handled")
		}
		return err
	}
}
