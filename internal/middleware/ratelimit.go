package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware enforces a fixed-window per-client, per-path quota
// backed by redis. Redis trouble fails open: throttling is protection, not
// correctness.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := "ratelimit:" + c.IP() + ":" + c.Path()

		count, err := rdb.Incr(c.Context(), key).Result()
		if err != nil {
			return c.Next()
		}
		if count == 1 {
			rdb.Expire(c.Context(), key, window)
		}

		if count > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}

		return c.Next()
	}
}
