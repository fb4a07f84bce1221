package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("OVERDRAFT_LIMIT", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, int64(50), cfg.App.OverdraftLimit)
		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, "text", cfg.Logger.Format)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("OVERDRAFT_LIMIT", "200")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, int64(200), cfg.App.OverdraftLimit)
		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, "json", cfg.Logger.Format)
	})

	t.Run("unparseable overdraft limit falls back to default", func(t *testing.T) {
		t.Setenv("OVERDRAFT_LIMIT", "plenty")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, int64(50), cfg.App.OverdraftLimit)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "negative overdraft limit",
			mutate:  func(c *Config) { c.App.OverdraftLimit = -1 },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logger.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logger.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				App:    AppConfig{OverdraftLimit: 50},
				Logger: LoggerConfig{Level: "info", Format: "text"},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("unknown"))
}
