package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/SajidSojib/go-postgres-server/handlers"
	"github.com/SajidSojib/go-postgres-server/router"
	"github.com/SajidSojib/go-postgres-server/utils"
)

var userColumns = []string{"id", "name", "email", "age", "phone", "address", "created_at", "updated_at"}

var todoColumns = []string{"id", "user_id", "title", "description", "completed", "due_date", "created_at", "updated_at"}

// newTestApp dựng app Fiber với database giả lập thay cho PostgreSQL
func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	router.SetupRoutes(app, db, handlers.NewUserHandler(db, log), handlers.NewTodoHandler(db, log))
	router.SetupFallback(app)

	return app, mock
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, utils.Response) {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	return resp, envelope
}
