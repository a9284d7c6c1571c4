package auth_test

import (
	"net/http/httptest"
	"testing"

	"survey-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAuth(t *testing.T) {
	t.Run("Valid Key", func(t *testing.T) {
		app := setupApp("secret")
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Api-Key", "secret")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Wrong Key", func(t *testing.T) {
		app := setupApp("secret")
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Api-Key", "nope")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Missing Key", func(t *testing.T) {
		app := setupApp("secret")
		req := httptest.NewRequest("GET", "/ping", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Disabled When Empty", func(t *testing.T) {
		app := setupApp("")
		req := httptest.NewRequest("GET", "/ping", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
