package database

import (
	"path/filepath"
	"testing"

	"sociopedia-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnection_SQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", DatabaseURL: filepath.Join(t.TempDir(), "test.db")}
	db, err := NewConnection(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	assert.NoError(t, sqlDB.Ping())
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestNewConnection_Errors(t *testing.T) {
	_, err := NewConnection(&config.Config{DBDriver: "mongodb"})
	assert.Error(t, err)

	_, err = NewConnection(&config.Config{DBDriver: "postgres"})
	assert.Error(t, err)
}
