package ws

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gigconnect/internal/delivery/http/middleware"
	"gigconnect/internal/pkg/jwt"
)

func newWSApp(t *testing.T, tokens jwt.Service) (*fiber.App, *Hub) {
	t.Helper()

	hub := NewHub(zerolog.Nop())
	go hub.Run()

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(zerolog.Nop()).Middleware())
	NewHandler(hub, tokens, stubChat{}, "", zerolog.Nop()).RegisterRoutes(app)

	return app, hub
}

func TestHandshake_MissingToken(t *testing.T) {
	app, _ := newWSApp(t, jwt.NewHMACService("test-secret"))

	req := httptest.NewRequest("GET", "/ws", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestHandshake_InvalidToken(t *testing.T) {
	app, hub := newWSApp(t, jwt.NewHMACService("test-secret"))

	forged, err := jwt.NewHMACService("other-secret").Issue(uuid.New(), "client")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	for _, target := range []string{"/ws?token=garbage", "/ws?token=" + forged} {
		req := httptest.NewRequest("GET", target, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", target, resp.StatusCode)
		}
	}

	// A rejected handshake never registers a session.
	hub.mutex.RLock()
	n := len(hub.channels)
	hub.mutex.RUnlock()
	if n != 0 {
		t.Fatalf("expected empty registry, got %d channels", n)
	}
}

func TestHandshake_ValidTokenButNoUpgradeHeaders(t *testing.T) {
	tokens := jwt.NewHMACService("test-secret")
	app, _ := newWSApp(t, tokens)

	tok, err := tokens.Issue(uuid.New(), "client")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Auth passes; the upgrade itself then fails because this is a plain
	// HTTP request. Either way no 401 is produced.
	req := httptest.NewRequest("GET", "/ws?token="+tok, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode == fiber.StatusUnauthorized {
		t.Fatalf("valid token must not be rejected as unauthorized")
	}
}
