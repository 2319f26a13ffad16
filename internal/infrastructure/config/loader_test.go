package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))

	orig := ConfigPaths
	ConfigPaths = []string{dir}
	t.Cleanup(func() { ConfigPaths = orig })
}

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults over a minimal config file", func(t *testing.T) {
		t.Setenv("ME_ENV", "test")
		writeConfigFile(t, "test.yaml", "database:\n  host: localhost\n  database: engine\n")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, 10*time.Second, cfg.Engine.ExecutorConnectTimeout)
		assert.Equal(t, "@every 30s", cfg.Engine.SchedulerSpec)
	})

	t.Run("environment variables override file values", func(t *testing.T) {
		t.Setenv("ME_ENV", "test")
		t.Setenv("ME_DB_HOST", "db.internal")
		t.Setenv("ME_DB_PASSWORD", "store-pass")
		t.Setenv("ME_ENGINE_ENCRYPTION_SECRET", "super-secret")
		t.Setenv("ME_ENGINE_SCHEDULER_SPEC", "@every 5m")
		t.Setenv("ME_LOGGER_LEVEL", "debug")
		writeConfigFile(t, "test.yaml", "database:\n  host: localhost\n  database: engine\n")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "store-pass", cfg.Database.Password)
		assert.Equal(t, "super-secret", cfg.Engine.EncryptionSecret)
		assert.Equal(t, "@every 5m", cfg.Engine.SchedulerSpec)
		assert.Equal(t, "debug", cfg.Logger.Level)
	})

	t.Run("missing config file for the environment fails", func(t *testing.T) {
		t.Setenv("ME_ENV", "nosuchenv")

		orig := ConfigPaths
		ConfigPaths = []string{t.TempDir()}
		t.Cleanup(func() { ConfigPaths = orig })

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
