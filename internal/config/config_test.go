package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://www.worldcubeassociation.org", cfg.WCA.BaseURL)
	assert.Equal(t, 5.0, cfg.WCA.RequestsPerSecond)
	assert.Equal(t, 30*time.Second, cfg.WCA.Timeout)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Server.RateBurst)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
wca:
  client_id: abc
  timeout: 5s
server:
  addr: ":9000"
log:
  level: debug
`), 0o644))

	t.Setenv("SCRAMBLES_MATCHER_WCA_ACCESS_TOKEN", "token-123")
	t.Setenv("SCRAMBLES_MATCHER_SERVER_ADDR", ":9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.WCA.ClientID)
	assert.Equal(t, 5*time.Second, cfg.WCA.Timeout)
	assert.Equal(t, "token-123", cfg.WCA.AccessToken)
	assert.Equal(t, ":9100", cfg.Server.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LogConfig{Level: tt.level}.SlogLevel(), "level %q", tt.level)
	}
}
