package utils

import "github.com/gofiber/fiber/v2"

// Response là cấu trúc phản hồi chung cho mọi handler
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Path    string      `json:"path,omitempty"`
}

// Success trả về phản hồi thành công kèm dữ liệu
func Success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail trả về phản hồi thất bại với thông báo lỗi
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
	})
}

// RouteNotFound trả về phản hồi 404 khi không có route nào khớp
func RouteNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(Response{
		Success: false,
		Message: "Route not found",
		Path:    c.Path(),
	})
}
