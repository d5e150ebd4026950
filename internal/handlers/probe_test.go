package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestProbes(t *testing.T) {
	tests := []struct {
		name          string
		pingErr       error
		wantReadiness int
	}{
		{"database up", nil, http.StatusOK},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProbeHandler(stubPinger{err: tt.pingErr})
			app := fiber.New()
			app.Get("/healthz", h.Liveness)
			app.Get("/readyz", h.Readiness)

			status, _ := doRequest(t, app, httpGet("/healthz"))
			if status != http.StatusOK {
				t.Errorf("liveness status = %d, want 200", status)
			}

			status, _ = doRequest(t, app, httpGet("/readyz"))
			if status != tt.wantReadiness {
				t.Errorf("readiness status = %d, want %d", status, tt.wantReadiness)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/teapot", func(c fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	app.Get("/boom", func(c fiber.Ctx) error {
		return errors.New("unexpected")
	})

	status, body := doRequest(t, app, httpGet("/teapot"))
	if status != fiber.StatusTeapot || string(body) != `{"error":"short and stout","status":"error"}` {
		t.Errorf("teapot: status = %d, body = %s", status, body)
	}

	status, _ = doRequest(t, app, httpGet("/boom"))
	if status != fiber.StatusInternalServerError {
		t.Errorf("boom: status = %d, want 500", status)
	}
}
