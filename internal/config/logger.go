package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a new structured logger based on configuration.
// Logs go to stderr so the statement table on stdout stays clean.
func (c *LoggerConfig) NewLogger() *slog.Logger {
	level := parseLogLevel(c.Level)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if c.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
