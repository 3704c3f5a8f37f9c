package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biolib.yaml")
	content := `
server:
  port: 9090
scanner:
  workers: 3
  batch_size: 250
logging:
  level: debug
  development: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host, "unset fields keep defaults")
	assert.Equal(t, 3, cfg.Scanner.Workers)
	assert.Equal(t, 250, cfg.Scanner.BatchSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BIOLIB_HOST", "0.0.0.0")
	t.Setenv("BIOLIB_PORT", "7000")
	t.Setenv("BIOLIB_WORKERS", "2")
	t.Setenv("BIOLIB_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Scanner.Workers)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "server: [unclosed"},
		{"port out of range", "server:\n  port: 70000\n"},
		{"bad duration", "server:\n  read_timeout: soon\n"},
		{"zero batch", "scanner:\n  batch_size: 0\n"},
		{"negative workers", "scanner:\n  workers: -1\n"},
		{"unknown level", "logging:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "biolib.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("BIOLIB_PORT", "eighty")
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "biolib.yaml")
	cfg := DefaultConfig()
	cfg.Scanner.BatchSize = 42

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 15*time.Second, Duration("15s", time.Minute))
	assert.Equal(t, time.Minute, Duration("nope", time.Minute))
}
