package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

// RateLimiter allows max requests per client IP and scope within a sliding
// window. Rejections are logged through the global zap logger.
func RateLimiter(scope string, max int, window time.Duration) fiber.Handler {
	if max == 0 {
		max = 50
	}
	if window == 0 {
		window = 1 * time.Minute
	}
	retryAfter := strconv.Itoa(int(window.Seconds()))

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return scope + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			zap.L().Warn("rate limit reached",
				zap.String("scope", scope),
				zap.String("ip", c.IP()),
				zap.String("path", c.Path()),
			)
			c.Set(fiber.HeaderRetryAfter, retryAfter)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "too many requests, slow down",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
