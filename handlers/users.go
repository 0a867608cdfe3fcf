package handlers

import (
	"database/sql"
	"errors"

	"github.com/SajidSojib/go-postgres-server/models"
	"github.com/SajidSojib/go-postgres-server/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// UserHandler chứa các handler cho tài nguyên user
type UserHandler struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewUserHandler(db *sql.DB, log *logrus.Logger) *UserHandler {
	return &UserHandler{db: db, log: log}
}

// Tạo mới một User
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	nUser := new(models.User)
	if err := c.BodyParser(nUser); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	row := h.db.QueryRowContext(c.Context(),
		"INSERT INTO users (name, email, age, phone, address) VALUES ($1, $2, $3, $4, $5) RETURNING id, name, email, age, phone, address, created_at, updated_at",
		nUser.Name, nUser.Email, nUser.Age, nUser.Phone, nUser.Address,
	)
	if err := row.Scan(&nUser.ID, &nUser.Name, &nUser.Email, &nUser.Age, &nUser.Phone, &nUser.Address, &nUser.CreatedAt, &nUser.UpdatedAt); err != nil {
		h.log.WithError(err).Error("insert user failed")
		return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.Success(c, fiber.StatusCreated, "User created successfully", nUser)
}

// Lấy tất cả Users
func (h *UserHandler) HandleAllUsers(c *fiber.Ctx) error {
	rows, err := h.db.QueryContext(c.Context(),
		"SELECT id, name, email, age, phone, address, created_at, updated_at FROM users",
	)
	if err != nil {
		h.log.WithError(err).Error("select users failed")
		return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.Phone, &u.Address, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.Success(c, fiber.StatusOK, "Users fetched successfully", users)
}

// Lấy một User theo ID
func (h *UserHandler) HandleGetOneUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var u models.User
	err := h.db.QueryRowContext(c.Context(),
		"SELECT id, name, email, age, phone, address, created_at, updated_at FROM users WHERE id = $1", id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.Phone, &u.Address, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return utils.Fail(c, fiber.StatusNotFound, "User not found")
	} else if err != nil {
		h.log.WithError(err).Error("select user failed")
		return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.Success(c, fiber.StatusOK, "User fetched successfully", u)
}

// Cập nhật toàn bộ các trường của một User
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	uUser := new(models.User)
	if err := c.BodyParser(uUser); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	row := h.db.QueryRowContext(c.Context(),
		"UPDATE users SET name = $1, email = $2, age = $3, phone = $4, address = $5 WHERE id = $6 RETURNING id, name, email, age, phone, address, created_at, updated_at",
		uUser.Name, uUser.Email, uUser.Age, uUser.Phone, uUser.Address, id,
	)
	err := row.Scan(&uUser.ID, &uUser.Name, &uUser.Email, &uUser.Age, &uUser.Phone, &uUser.Address, &uUser.CreatedAt, &uUser.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return utils.Fail(c, fiber.StatusNotFound, "User not found")
	} else if err != nil {
		h.log.WithError(err).Error("update user failed")
		return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.Success(c, fiber.StatusOK, "User updated successfully", uUser)
}

// Xóa một User, các Todo thuộc về user này bị xóa theo (ON DELETE CASCADE)
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var u models.User
	err := h.db.QueryRowContext(c.Context(),
		"DELETE FROM users WHERE id = $1 RETURNING id, name, email, age, phone, address, created_at, updated_at", id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.Phone, &u.Address, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return utils.Fail(c, fiber.StatusNotFound, "User not found")
	} else if err != nil {
		h.log.WithError(err).Error("delete user failed")
		return utils.Fail(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.Success(c, fiber.StatusOK, "User deleted successfully", u)
}
