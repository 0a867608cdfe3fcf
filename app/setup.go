package app

import (
	"os"

	"github.com/SajidSojib/go-postgres-server/config"
	"github.com/SajidSojib/go-postgres-server/database"
	"github.com/SajidSojib/go-postgres-server/handlers"
	"github.com/SajidSojib/go-postgres-server/router"
	"github.com/SajidSojib/go-postgres-server/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

// SetupAndRunApp khởi động ứng dụng Fiber
func SetupAndRunApp() error {
	// Load biến môi trường từ file .env
	err := config.LoadENV()
	if err != nil {
		return err
	}

	log := utils.NewLogger(os.Getenv("APP_ENV"))

	// Kết nối PostgreSQL
	uri, err := config.PostgresURI()
	if err != nil {
		return err
	}
	db, err := database.Connect(uri)
	if err != nil {
		return err
	}

	// Đảm bảo kết nối với cơ sở dữ liệu được đóng sau khi ứng dụng kết thúc
	defer db.Close()

	log.Info("Connected to PostgreSQL successfully")

	// Tạo bảng trước khi nhận request, lỗi ở đây chặn toàn bộ việc khởi động
	if err := database.CreateTables(db); err != nil {
		return err
	}

	log.Info("Tables created or already exist")

	// Tạo ứng dụng Fiber
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",                           // Cho phép tất cả các nguồn (có thể điều chỉnh)
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", // Các phương thức được phép
	}))

	// Đính kèm middleware để xử lý lỗi và ghi log
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	// Thiết lập route cho ứng dụng
	router.SetupRoutes(app, db, handlers.NewUserHandler(db, log), handlers.NewTodoHandler(db, log))

	// Đính kèm Swagger (nếu cần)
	config.AddSwaggerRoutes(app)

	// Handler 404 phải nằm sau mọi route khác
	router.SetupFallback(app)

	// Lấy port từ biến môi trường và bắt đầu lắng nghe kết nối
	port := config.Port()

	log.WithFields(logrus.Fields{"port": port}).Info("Starting HTTP server")

	// Lắng nghe trên cổng chỉ định
	return app.Listen(":" + port)
}
