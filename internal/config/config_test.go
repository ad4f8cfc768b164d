package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no config.yml is found.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, config.Development, cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "portfolio.db", cfg.Storage.DSN)
	assert.Zero(t, cfg.Storage.CacheTTL)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Enabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Environment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("APP_ENV", config.Production)
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("STORAGE_CACHE_TTL", "30s")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("CONTACT_DELAY", "1500ms")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 30*time.Second, cfg.Storage.CacheTTL)
	assert.Equal(t, 1500*time.Millisecond, cfg.ContactDelay)
	assert.True(t, cfg.SMTP.Enabled())
	assert.Equal(t, "me@example.com", cfg.SMTP.To)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(dir+"/config.yml", []byte("PORT: \"7000\"\nSTORAGE_DSN: data.db\n"), 0o600))
	t.Setenv("STORAGE_DSN", "env.db")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "env.db", cfg.Storage.DSN)
}

func TestLoad_NegativeDuration(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONTACT_DELAY", "-1s")

	_, err := config.Load()

	assert.Error(t, err)
}
