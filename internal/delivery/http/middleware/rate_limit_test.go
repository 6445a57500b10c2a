package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
)

// fakeWindowCounter reproduces redis fixed-window semantics (INCR with a TTL
// set only when the key is created) against an injectable clock.
type fakeWindowCounter struct {
	now    time.Time
	counts map[string]int64
	expiry map[string]time.Time
}

func newFakeWindowCounter() *fakeWindowCounter {
	return &fakeWindowCounter{
		now:    time.Now(),
		counts: make(map[string]int64),
		expiry: make(map[string]time.Time),
	}
}

func (f *fakeWindowCounter) IncrWindow(_ context.Context, key string, window time.Duration) (int64, bool) {
	if exp, exists := f.expiry[key]; exists && !f.now.Before(exp) {
		delete(f.counts, key)
		delete(f.expiry, key)
	}
	f.counts[key]++
	if f.counts[key] == 1 {
		f.expiry[key] = f.now.Add(window)
	}
	return f.counts[key], true
}

func newLimitedApp(counter WindowCounter) *fiber.App {
	app := fiber.New()
	app.Use(NewRateLimitMiddleware(counter).Middleware())
	app.Get("/ping", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRateLimit_RejectsAboveLimit(t *testing.T) {
	counter := newFakeWindowCounter()
	app := newLimitedApp(counter)

	for i := 0; i < rateLimitMax; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d: expected 200 inside the window, got %d", i, resp.StatusCode)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	if err != nil {
		t.Fatalf("over-limit request: %v", err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429 past the limit, got %d", resp.StatusCode)
	}
}

func TestRateLimit_WindowResetsAfterExpiry(t *testing.T) {
	counter := newFakeWindowCounter()
	app := newLimitedApp(counter)

	// Exhaust the window with requests spaced well under 15 minutes. The
	// window must stay anchored to the first request rather than sliding
	// forward with each one.
	for i := 0; i < rateLimitMax+5; i++ {
		counter.now = counter.now.Add(time.Second)
		if _, err := app.Test(httptest.NewRequest("GET", "/ping", nil)); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}

	counter.now = counter.now.Add(rateLimitWindow)

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	if err != nil {
		t.Fatalf("post-expiry request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 after the window elapsed, got %d", resp.StatusCode)
	}
}

func TestRateLimit_BypassesWhenBackendUnavailable(t *testing.T) {
	app := newLimitedApp(unavailableCounter{})

	for i := 0; i < rateLimitMax+10; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d: expected pass-through without a backend, got %d", i, resp.StatusCode)
		}
	}
}

type unavailableCounter struct{}

func (unavailableCounter) IncrWindow(context.Context, string, time.Duration) (int64, bool) {
	return 0, false
}
