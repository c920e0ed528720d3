package redis_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/pkg/db/redis"
)

func configFor(t *testing.T, s *miniredis.Miniredis) *redis.Config {
	t.Helper()
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)

	cfg := redis.DefaultConfig()
	cfg.Host = s.Host()
	cfg.Port = port
	cfg.Timeout = time.Second
	return cfg
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	t.Run("connects", func(t *testing.T) {
		s := miniredis.RunT(t)

		client, err := redis.NewClient(ctx, configFor(t, s))
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		require.NoError(t, client.RawClient().Set(ctx, "storefront:access_token", "abc", 0).Err())
		assert.True(t, s.Exists("storefront:access_token"))
	})

	t.Run("ping fails", func(t *testing.T) {
		s := miniredis.RunT(t)
		cfg := configFor(t, s)
		s.Close()

		client, err := redis.NewClient(ctx, cfg)

		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to Redis")
	})
}

func TestConfig_Address(t *testing.T) {
	cfg := &redis.Config{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", cfg.Address())
}

func TestClient_RawClientNil(t *testing.T) {
	var client *redis.Client
	assert.Nil(t, client.RawClient())
}
