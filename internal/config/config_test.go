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

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "memory", cfg.StorageType)
	assert.Equal(t, "golfcup.db", cfg.SQLitePath)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GOLFCUP_PORT", "9090")
	t.Setenv("GOLFCUP_STORAGE_TYPE", "redis")
	t.Setenv("GOLFCUP_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("GOLFCUP_LOG_LEVEL", "debug")
	t.Setenv("GOLFCUP_SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "redis", cfg.StorageType)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOLFCUP_STORAGE_TYPE=sqlite\nGOLFCUP_SQLITE_PATH=/tmp/cup.db\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("GOLFCUP_STORAGE_TYPE")
		_ = os.Unsetenv("GOLFCUP_SQLITE_PATH")
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.StorageType)
	assert.Equal(t, "/tmp/cup.db", cfg.SQLitePath)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown storage", map[string]string{"GOLFCUP_STORAGE_TYPE": "postgres"}},
		{"redis without url", map[string]string{"GOLFCUP_STORAGE_TYPE": "redis"}},
		{"bad log level", map[string]string{"GOLFCUP_LOG_LEVEL": "loud"}},
		{"bad port", map[string]string{"GOLFCUP_PORT": "0"}},
		{"non-numeric port", map[string]string{"GOLFCUP_PORT": "http"}},
		{"bad timeout", map[string]string{"GOLFCUP_WRITE_TIMEOUT": "soon"}},
		{"zero shutdown timeout", map[string]string{"GOLFCUP_SHUTDOWN_TIMEOUT": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}
