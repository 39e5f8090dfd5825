package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-registry/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

func newErrorTestApp(buf *bytes.Buffer, handler fiber.Handler) *fiber.App {
	logger := zerolog.New(buf)
	app := fiber.New()
	app.Use(NewErrorMiddleware(logger).Middleware())
	app.Get("/boom", handler)
	return app
}

func TestErrorMiddleware_InternalWithCauseLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	cause := errors.New("connection refused")
	app := newErrorTestApp(&buf, func(c fiber.Ctx) error {
		// Mirrors the usecase path: the failure was logged where it happened
		// and travels up wrapped in an AppError.
		return NewAppError(fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternal, nil, cause)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != response.MessageInternal {
		t.Fatalf("expected generic message, got %v", body["message"])
	}
	if strings.Contains(buf.String(), "unhandled request error") {
		t.Fatalf("middleware re-logged an already-logged failure: %s", buf.String())
	}
}

func TestErrorMiddleware_BareErrorStillLogged(t *testing.T) {
	var buf bytes.Buffer
	app := newErrorTestApp(&buf, func(c fiber.Ctx) error {
		return errors.New("nobody caught this")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if got := strings.Count(buf.String(), "unhandled request error"); got != 1 {
		t.Fatalf("expected exactly one log entry, got %d: %s", got, buf.String())
	}
}

func TestErrorMiddleware_CauselessInternalAppErrorLogged(t *testing.T) {
	var buf bytes.Buffer
	app := newErrorTestApp(&buf, func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternal, nil, nil)
	})

	if _, err := app.Test(httptest.NewRequest("GET", "/boom", nil)); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got := strings.Count(buf.String(), "unhandled request error"); got != 1 {
		t.Fatalf("expected exactly one log entry, got %d: %s", got, buf.String())
	}
}
