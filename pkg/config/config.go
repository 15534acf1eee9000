package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	DBDriver       string
	DatabaseURL    string
	JWTSecret      string
	JWTExpiry      time.Duration
	AssetsDir      string
	MaxUploadBytes int64
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	expiry := 24 * time.Hour
	if exp := getEnv("JWT_EXPIRES_IN", ""); exp != "" {
		if parsed, err := ParseExpiry(exp); err == nil {
			expiry = parsed
		}
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			redisDB = parsed
		}
	}

	return &Config{
		Port:           getEnv("PORT", "3001"),
		GinMode:        getEnv("GIN_MODE", "release"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL:    getEnv("DATABASE_URL", os.Getenv("MONGO_DB_URI")),
		JWTSecret:      getEnv("JWT_SECRET_KEY", getEnv("JWT_SECRET", "your-secret-key-change-in-production")),
		JWTExpiry:      expiry,
		AssetsDir:      getEnv("ASSETS_DIR", "public/assets"),
		MaxUploadBytes: 30 << 20,
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        redisDB,
	}
}

// ParseExpiry accepts a Go duration ("15m", "2h"), a day count ("7d") or a
// bare number of seconds ("3600").
func ParseExpiry(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, err
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(s)
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
