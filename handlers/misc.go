package handlers

import (
	"database/sql"

	"github.com/SajidSojib/go-postgres-server/utils"
	"github.com/gofiber/fiber/v2"
)

// Trang chủ
func HandleRoot(c *fiber.Ctx) error {
	return c.SendString("Hello World!")
}

// HandleHealthCheck kiểm tra kết nối tới database
func HandleHealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := db.PingContext(c.Context()); err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
		}
		return utils.Success(c, fiber.StatusOK, "Service is healthy", nil)
	}
}

// HandleNotFound là handler dự phòng khi không có route nào khớp
func HandleNotFound(c *fiber.Ctx) error {
	return utils.RouteNotFound(c)
}
