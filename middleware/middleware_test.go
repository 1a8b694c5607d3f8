package middleware

import (
	"bytes"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	app := fiber.New()
	app.Use(StructuredLogger(logger))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"request_id": GetRequestID(c)})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "nope"})
	})

	t.Run("Request id header and info record", func(t *testing.T) {
		buf.Reset()
		resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		assert.Contains(t, buf.String(), "request completed")
		assert.Contains(t, buf.String(), resp.Header.Get("X-Request-ID"))
	})

	t.Run("Client errors log at warn", func(t *testing.T) {
		buf.Reset()
		resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "client error")
	})
}

func TestSecurity(t *testing.T) {
	app := fiber.New()
	app.Use(Security())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
}
