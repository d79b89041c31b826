package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// RateLimit keeps one token bucket per client IP. Buckets live for the
// process lifetime, which is fine at this service's scale.
func RateLimit(rps rate.Limit, burst int) fiber.Handler {
	var mu sync.Mutex
	buckets := make(map[string]*rate.Limiter)

	return func(c *fiber.Ctx) error {
		mu.Lock()
		lim, ok := buckets[c.IP()]
		if !ok {
			lim = rate.NewLimiter(rps, burst)
			buckets[c.IP()] = lim
		}
		mu.Unlock()

		if !lim.Allow() {
			return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded")
		}
		return c.Next()
	}
}
