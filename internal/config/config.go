package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all library configuration
type Config struct {
	StorePath string
	LogLevel  string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		StorePath: getEnv("STORE_PATH", "lexibox.db"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
