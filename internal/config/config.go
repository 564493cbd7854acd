package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

// Config carries all environment-driven settings. There is no other source
// of configuration.
type Config struct {
	Port      string
	DBPath    string
	DBPrefix  string
	JWTSecret string

	// Per-IP admission limit: RateLimit requests per RateWindow, uniform
	// across all routes.
	RateLimit  int
	RateWindow time.Duration
}

// Load parses the process environment into a Config. Call LoadEnv first so
// the variables are actually there.
func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "3000"),
		DBPath:     getEnv("DB_PATH", "database.db"),
		DBPrefix:   os.Getenv("DB_PREFIX"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		RateLimit:  getEnvInt("REQ_LIMIT", 100),
		RateWindow: time.Duration(getEnvInt("WINDOW_MINUTES", 15)) * time.Minute,
	}
}

// LoadEnv populates the process environment: from AWS SSM Parameter Store
// in production, from a local .env file otherwise.
func LoadEnv() error {
	if os.Getenv("GO_ENV") == "production" {
		return loadProdEnv()
	}
	return godotenv.Load()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		log.Warnf("environment variable %s is not a number (%q), using default %d", key, val, fallback)
		return fallback
	}
	return n
}
