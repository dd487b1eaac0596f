package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimit counts requests per client IP in a fixed redis window. With no
// redis client configured it is a no-op, so local development works without
// the full stack.
func RateLimit(redisClient *redis.Client, max int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisClient == nil {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.Path(), c.IP())

		count, err := redisClient.Incr(c.Context(), key).Result()
		if err != nil {
			// Redis trouble should not take the API down.
			return c.Next()
		}
		if count == 1 {
			_ = redisClient.Expire(c.Context(), key, window).Err()
		}

		if count > int64(max) {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests, slow down")
		}

		return c.Next()
	}
}
