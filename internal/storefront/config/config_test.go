package config_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/storefront/config"
	"gamestore/pkg/logger"
)

const (
	EnvAPIBaseURL        = "STOREFRONT_API_BASE_URL"
	EnvAPIRefreshTimeout = "STOREFRONT_API_REFRESH_TIMEOUT"
	EnvStorageBackend    = "STOREFRONT_STORAGE_BACKEND"
	EnvSessionInterval   = "STOREFRONT_SESSION_CHECK_INTERVAL"
	EnvSessionThreshold  = "STOREFRONT_SESSION_REFRESH_THRESHOLD"
	EnvRedisEnabled      = "STOREFRONT_REDIS_ENABLED"
	EnvRedisPort         = "STOREFRONT_REDIS_PORT"
	EnvHTTPPort          = "STOREFRONT_HTTP_PORT"
	EnvLoggerMode        = "STOREFRONT_LOGGER_MODE"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvAPIBaseURL, "https://api.gamestore.test/api/")

		cfg, err := config.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, "https://api.gamestore.test/api/", cfg.API.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.API.RefreshTimeout)
		assert.Equal(t, 3, cfg.API.RetryAttempts)
		assert.Equal(t, config.StorageFile, cfg.Storage.Backend)
		assert.Equal(t, time.Minute, cfg.Session.CheckInterval)
		assert.Equal(t, 2*time.Minute, cfg.Session.RefreshThreshold)
		assert.Equal(t, "/login", cfg.Session.SignInPath)
		assert.Equal(t, 2*time.Minute, cfg.Catalog.CacheTTL)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "127.0.0.1:8090", cfg.HTTP.GetAddress())
		assert.Equal(t, logger.Production, cfg.Logging.GetEnvironment())
		assert.Equal(t, 5*time.Second, cfg.Shutdown.Timeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		for key, value := range map[string]string{
			EnvAPIBaseURL:        "http://localhost:8000/api",
			EnvAPIRefreshTimeout: "3s",
			EnvStorageBackend:    config.StorageRedis,
			EnvSessionInterval:   "30s",
			EnvSessionThreshold:  "5m",
			EnvRedisEnabled:      "true",
			EnvRedisPort:         "6380",
			EnvHTTPPort:          "9000",
			EnvLoggerMode:        "development",
		} {
			t.Setenv(key, value)
		}

		cfg, err := config.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, cfg.API.RefreshTimeout)
		assert.Equal(t, config.StorageRedis, cfg.Storage.Backend)
		assert.Equal(t, 30*time.Second, cfg.Session.CheckInterval)
		assert.Equal(t, 5*time.Minute, cfg.Session.RefreshThreshold)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, "localhost:6380", cfg.Redis.ClientConfig().Address())
		assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.GetAddress())
		assert.Equal(t, logger.Development, cfg.Logging.GetEnvironment())
	})

	t.Run("base url is required", func(t *testing.T) {
		t.Setenv(EnvAPIBaseURL, "")
		require.NoError(t, os.Unsetenv(EnvAPIBaseURL))

		cfg, err := config.Load(ctx)

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), config.ErrFailedLoadConfig)
	})
}

func TestRedisConfig_ClientConfig(t *testing.T) {
	cfg := config.RedisConfig{
		Host:     "cache.internal",
		Port:     6379,
		Password: "secret",
		DB:       2,
		PoolSize: 4,
		Timeout:  time.Second,
	}

	client := cfg.ClientConfig()

	assert.Equal(t, "cache.internal:6379", client.Address())
	assert.Equal(t, "secret", client.Password)
	assert.Equal(t, 2, client.DB)
	assert.Equal(t, 4, client.PoolSize)
	assert.Equal(t, time.Second, client.Timeout)
}
