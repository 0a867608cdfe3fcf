package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver cho database/sql
)

// Connect mở kết nối với PostgreSQL và kiểm tra bằng Ping
func Connect(uri string) (*sql.DB, error) {
	db, err := sql.Open("pgx", withSSLMode(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot connect to PostgreSQL: %w", err)
	}

	return db, nil
}

// withSSLMode bổ sung sslmode=require nếu URI chưa chỉ định,
// mã hóa kết nối nhưng không xác minh chứng chỉ của server
func withSSLMode(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "require")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// CreateTables tạo bảng users và todos nếu chưa tồn tại
func CreateTables(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(75) NOT NULL,
		email VARCHAR(150) NOT NULL UNIQUE,
		age INT,
		phone VARCHAR(20),
		address TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS todos (
		id SERIAL PRIMARY KEY,
		user_id INT REFERENCES users(id) ON DELETE CASCADE,
		title VARCHAR(150) NOT NULL,
		description TEXT,
		completed BOOLEAN DEFAULT FALSE,
		due_date DATE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}
