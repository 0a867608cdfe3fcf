package handlers

import (
	"database/sql"

	"github.com/SajidSojib/go-postgres-server/models"
	"github.com/SajidSojib/go-postgres-server/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// TodoHandler chứa các handler cho tài nguyên todo
type TodoHandler struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewTodoHandler(db *sql.DB, log *logrus.Logger) *TodoHandler {
	return &TodoHandler{db: db, log: log}
}

// Tạo mới một Todo, user_id phải tham chiếu tới một User tồn tại
func (h *TodoHandler) HandleCreateTodo(c *fiber.Ctx) error {
	nTodo := new(models.Todo)
	if err := c.BodyParser(nTodo); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	row := h.db.QueryRowContext(c.Context(),
		"INSERT INTO todos (user_id, title, description, completed, due_date) VALUES ($1, $2, $3, $4, $5) RETURNING id, user_id, title, description, completed, due_date, created_at, updated_at",
		nTodo.UserID, nTodo.Title, nTodo.Description, nTodo.Completed, nTodo.DueDate,
	)
	if err := row.Scan(&nTodo.ID, &nTodo.UserID, &nTodo.Title, &nTodo.Description, &nTodo.Completed, &nTodo.DueDate, &nTodo.CreatedAt, &nTodo.UpdatedAt); err != nil {
		h.log.WithError(err).Error("insert todo failed")
		return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.Success(c, fiber.StatusCreated, "Todo created successfully", nTodo)
}

// Lấy tất cả Todos của mọi user
func (h *TodoHandler) HandleAllTodos(c *fiber.Ctx) error {
	rows, err := h.db.QueryContext(c.Context(),
		"SELECT id, user_id, title, description, completed, due_date, created_at, updated_at FROM todos",
	)
	if err != nil {
		h.log.WithError(err).Error("select todos failed")
		return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Description, &todo.Completed, &todo.DueDate, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.Success(c, fiber.StatusOK, "Todos fetched successfully", todos)
}
