package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortDefault(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, "5000", Port())

	t.Setenv("PORT", "8080")
	assert.Equal(t, "8080", Port())
}

func TestPostgresURIRequired(t *testing.T) {
	t.Setenv("POSTGRESQL_URI", "")
	_, err := PostgresURI()
	require.Error(t, err)

	t.Setenv("POSTGRESQL_URI", "postgres://u:p@localhost:5432/appdb")
	uri, err := PostgresURI()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/appdb", uri)
}

func TestLoadENVWithoutFile(t *testing.T) {
	// không có file .env không phải là lỗi
	assert.NoError(t, LoadENV())
}
