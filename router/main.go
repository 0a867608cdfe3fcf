package router

import (
	"database/sql"

	"github.com/SajidSojib/go-postgres-server/handlers"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, db *sql.DB, users *handlers.UserHandler, todos *handlers.TodoHandler) {
	app.Get("/", handlers.HandleRoot)
	app.Get("/health", handlers.HandleHealthCheck(db))

	app.Post("/users", users.HandleCreateUser)
	app.Get("/users", users.HandleAllUsers)
	app.Get("/users/:id", users.HandleGetOneUser)
	app.Put("/users/:id", users.HandleUpdateUser)
	app.Delete("/users/:id", users.HandleDeleteUser)

	app.Post("/todos", todos.HandleCreateTodo)
	app.Get("/todos", todos.HandleAllTodos)
}

// SetupFallback đăng ký handler 404, phải gọi sau khi đã đăng ký mọi route khác
func SetupFallback(app *fiber.App) {
	app.Use(handlers.HandleNotFound)
}
