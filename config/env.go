package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// LoadENV nạp biến môi trường từ file .env (nếu có)
func LoadENV() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Port trả về cổng lắng nghe, mặc định là 5000
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return port
}

// PostgresURI trả về chuỗi kết nối PostgreSQL từ biến môi trường
func PostgresURI() (string, error) {
	uri := os.Getenv("POSTGRESQL_URI")
	if uri == "" {
		return "", errors.New("you must set your 'POSTGRESQL_URI' environmental variable")
	}
	return uri, nil
}
