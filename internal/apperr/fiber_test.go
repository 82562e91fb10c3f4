package apperr

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newApp(log *zap.SugaredLogger) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(log)})
	app.Get("/not-found", func(c *fiber.Ctx) error { return NotFound("shipment", "x") })
	app.Get("/locked", func(c *fiber.Ctx) error { return Locked("x") })
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "bad input") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	return app
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	app := newApp(zap.NewNop().Sugar())

	cases := []struct {
		path string
		code int
	}{
		{"/not-found", fiber.StatusNotFound},
		{"/locked", fiber.StatusConflict},
		{"/fiber", fiber.StatusBadRequest},
		{"/boom", fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.path, nil))
		if err != nil {
			t.Fatalf("%s: %v", tc.path, err)
		}
		if resp.StatusCode != tc.code {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.code, resp.StatusCode)
		}
	}
}

func TestErrorHandlerLogsUnexpectedErrors(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := newApp(zap.New(core).Sugar())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	raw, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(raw), "boom") {
		t.Fatal("internal error details must not leak into the response")
	}
	if logs.FilterMessage("unexpected error").Len() != 1 {
		t.Fatal("unexpected errors must be logged")
	}
}
