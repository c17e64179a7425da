package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoggerMiddleware logs one line per request. Server errors log at Warn so
// they stand out when the log level is raised.
func LoggerMiddleware(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := []zap.Field{
			zap.String("request_id", RequestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			log.Warn("http request", fields...)
		} else {
			log.Info("http request", fields...)
		}

		return err
	}
}
