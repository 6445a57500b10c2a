package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"gigconnect/internal/pkg/response"
)

const (
	rateLimitWindow = 15 * time.Minute
	rateLimitMax    = 100
)

// WindowCounter counts requests inside a fixed time window. Satisfied by
// cache.Redis; ok=false means the backend is unavailable and the request
// must pass.
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (count int64, ok bool)
}

// RateLimitMiddleware enforces a fixed window of 100 requests per 15 minutes
// per client IP across all API routes, counted in redis so the limit holds
// across process instances.
type RateLimitMiddleware struct {
	store WindowCounter
}

func NewRateLimitMiddleware(store WindowCounter) *RateLimitMiddleware {
	return &RateLimitMiddleware{store: store}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m == nil || m.store == nil {
			return c.Next()
		}

		key := "ratelimit:" + c.IP()
		count, ok := m.store.IncrWindow(c.Context(), key, rateLimitWindow)
		if !ok {
			return c.Next()
		}
		if count > rateLimitMax {
			return response.Error(c, fiber.StatusTooManyRequests, "Too many requests, please try again later")
		}
		return c.Next()
	}
}
