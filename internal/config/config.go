package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Logger LoggerConfig
	App    AppConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	OverdraftLimit int64 // minor units; balance may drop to -OverdraftLimit
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

// Load loads configuration from environment variables with sensible
// defaults. A .env file in the working directory is honored if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			OverdraftLimit: getEnvAsInt64("OVERDRAFT_LIMIT", 50),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.App.OverdraftLimit < 0 {
		return fmt.Errorf("overdraft limit cannot be negative, got %d", c.App.OverdraftLimit)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Logger.Format] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Logger.Format)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
