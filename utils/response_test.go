package utils_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SajidSojib/go-postgres-server/utils"
)

func fetchJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &m))
	return resp.StatusCode, m
}

func TestSuccessEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return utils.Success(c, fiber.StatusOK, "fetched", map[string]string{"k": "v"})
	})

	status, m := fetchJSON(t, app, "/ok")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, m["success"])
	assert.Equal(t, "fetched", m["message"])
	assert.Equal(t, map[string]interface{}{"k": "v"}, m["data"])
	assert.NotContains(t, m, "path")
}

// Phản hồi lỗi không chứa trường data
func TestFailEnvelopeOmitsData(t *testing.T) {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return utils.Fail(c, fiber.StatusInternalServerError, "boom")
	})

	status, m := fetchJSON(t, app, "/fail")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, false, m["success"])
	assert.Equal(t, "boom", m["message"])
	assert.NotContains(t, m, "data")
	assert.NotContains(t, m, "path")
}

func TestRouteNotFoundEnvelope(t *testing.T) {
	app := fiber.New()
	app.Use(utils.RouteNotFound)

	status, m := fetchJSON(t, app, "/missing")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, m["success"])
	assert.Equal(t, "Route not found", m["message"])
	assert.Equal(t, "/missing", m["path"])
	assert.NotContains(t, m, "data")
}
