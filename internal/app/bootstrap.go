package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"

	"gigconnect/internal/delivery/http/handler"
	"gigconnect/internal/delivery/http/middleware"
	"gigconnect/internal/delivery/http/routes"
	"gigconnect/internal/pkg/jwt"
	"gigconnect/internal/repository"
	ucauth "gigconnect/internal/usecase/auth"
	ucchat "gigconnect/internal/usecase/chat"
	ucgig "gigconnect/internal/usecase/gig"
	"gigconnect/internal/ws"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

func New(c *Container) *App {
	cfg := c.Config

	f := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	errMw := middleware.NewErrorMiddleware(c.Logger)
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())
	f.Use(helmet.New())
	f.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.App.ClientURL},
		AllowCredentials: true,
	}))

	tokens := jwt.NewHMACService(cfg.JWT.Secret)

	userRepo := repository.NewPostgresUserRepository(c.DB)
	gigRepo := repository.NewPostgresGigRepository(c.DB)
	applicationRepo := repository.NewPostgresApplicationRepository(c.DB)
	messageRepo := repository.NewPostgresMessageRepository(c.DB)

	authUC := ucauth.NewService(userRepo, tokens)
	gigUC := ucgig.NewService(gigRepo, applicationRepo, userRepo)
	chatUC := ucchat.NewService(messageRepo)

	hub := ws.NewHub(c.Logger)

	registry := routes.Registry{
		Health:    handler.NewHealthHandler(),
		Auth:      handler.NewAuthHandler(authUC),
		Gigs:      handler.NewGigHandler(gigUC),
		Demo:      handler.NewDemoHandler(c.DB),
		Chat:      ws.NewHandler(hub, tokens, chatUC, cfg.App.ClientURL, c.Logger),
		AuthGate:  middleware.NewAuthMiddleware(tokens),
		RateLimit: middleware.NewRateLimitMiddleware(c.Redis),
	}
	registry.Register(f)

	return &App{Fiber: f, Hub: hub}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
