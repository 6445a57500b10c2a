package routes

import (
	"github.com/gofiber/fiber/v3"

	"gigconnect/internal/delivery/http/handler"
	"gigconnect/internal/delivery/http/middleware"
	"gigconnect/internal/ws"
)

type Registry struct {
	Health *handler.HealthHandler
	Auth   *handler.AuthHandler
	Gigs   *handler.GigHandler
	Demo   *handler.DemoHandler
	Chat   *ws.Handler

	AuthGate  *middleware.AuthMiddleware
	RateLimit *middleware.RateLimitMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	// The websocket handshake authenticates itself and sits outside the
	// API rate-limit window.
	r.Chat.RegisterRoutes(app)

	api := app.Group("/api", r.RateLimit.Middleware())

	r.Demo.RegisterRoutes(api)
	r.Auth.RegisterRoutes(api.Group("/auth"))

	protected := api.Group("", r.AuthGate.Middleware())
	r.Gigs.RegisterRoutes(api, protected)
}
