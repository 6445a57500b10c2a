package handler

import (
	"github.com/gofiber/fiber/v3"

	"gigconnect/internal/database"
	"gigconnect/internal/database/seeder"
	"gigconnect/internal/pkg/response"
)

// DemoHandler exposes the best-effort demo-account seeding endpoint used by
// the development frontend.
type DemoHandler struct {
	db database.DB
}

func NewDemoHandler(db database.DB) *DemoHandler {
	return &DemoHandler{db: db}
}

func (h *DemoHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/demo-user", h.CreateDemoUser)
}

func (h *DemoHandler) CreateDemoUser(c fiber.Ctx) error {
	if err := seeder.SeedDemoUser(c.Context(), h.db); err != nil {
		return response.JSON(c, fiber.StatusOK, fiber.Map{"message": "Demo user already exists or created"})
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"message": "Demo user created"})
}
