// file: internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CACHE_PROVIDER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Environment)
	assert.Equal(t, "memory", cfg.Cache.Provider)
	assert.Equal(t, 4, cfg.Events.Workers)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "9999")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")
	t.Setenv("DB_CONNECT_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.RateLimitPerMin)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "0.0.0.0:9999", cfg.Server.Addr())
}

func TestLoad_ProductionRequiresDatabase(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RedisProviderRequiresURL(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("CACHE_PROVIDER", "redis")
	t.Setenv("REDIS_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_UnknownEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "weird")

	_, err := Load()
	assert.Error(t, err)
}
