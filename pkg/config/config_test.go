package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiry(t *testing.T) {
	cases := map[string]time.Duration{
		"15m":  15 * time.Minute,
		"2h":   2 * time.Hour,
		"7d":   7 * 24 * time.Hour,
		"3600": time.Hour,
	}
	for in, want := range cases {
		got, err := ParseExpiry(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseExpiry("soon")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("JWT_EXPIRES_IN", "1h")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGO_DB_URI", "legacy-dsn")
	t.Setenv("REDIS_DB", "2")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "legacy-dsn", cfg.DatabaseURL)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, int64(30<<20), cfg.MaxUploadBytes)
}

func TestLoad_BadExpiryKeepsDefault(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "forever")
	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}
