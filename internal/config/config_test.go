package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/fitmentor/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
backend = "redis"
redis_addr = "cache:6380"
redis_db = 2
quota_bytes = 5242880
log_level = "debug"
log_file = "/tmp/fitmentor.log"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.BackendRedis, cfg.Backend)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, int64(5242880), cfg.QuotaBytes)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/fitmentor.log", cfg.LogFile)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `backend = "redis"`)
	t.Setenv("FITMENTOR_BACKEND", "Memory")
	t.Setenv("FITMENTOR_QUOTA_BYTES", "1024")
	t.Setenv("FITMENTOR_DB_PATH", "/data/fm.db")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.BackendMemory, cfg.Backend)
	assert.Equal(t, int64(1024), cfg.QuotaBytes)
	assert.Equal(t, "/data/fm.db", cfg.DBPath)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := config.Load(writeConfig(t, `backend = "postgres"`))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, `quota_bytes = -1`))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, `backend = [`))
	assert.Error(t, err)

	t.Setenv("FITMENTOR_REDIS_DB", "zero")
	_, err = config.Load("")
	assert.Error(t, err)
}
