package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/storefront/adapters/cache"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		s.Close()
	})

	return s, client
}

func TestRedisCache_GetSet(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is empty without error", func(t *testing.T) {
		_, client := mockRedisServer(t)
		c := cache.NewRedisCache(client, time.Minute)

		value, err := c.Get(ctx, "catalog:accounts:")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("zero ttl uses default", func(t *testing.T) {
		s, client := mockRedisServer(t)
		c := cache.NewRedisCache(client, time.Minute)

		require.NoError(t, c.Set(ctx, "catalog:accounts:", `[]`, 0))

		value, err := c.Get(ctx, "catalog:accounts:")
		require.NoError(t, err)
		assert.Equal(t, `[]`, value)
		assert.Equal(t, time.Minute, s.TTL("catalog:accounts:"))
	})

	t.Run("value expires", func(t *testing.T) {
		s, client := mockRedisServer(t)
		c := cache.NewRedisCache(client, time.Minute)

		require.NoError(t, c.Set(ctx, "catalog:topups:", `[]`, 10*time.Second))
		s.FastForward(11 * time.Second)

		value, err := c.Get(ctx, "catalog:topups:")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("server down", func(t *testing.T) {
		s, client := mockRedisServer(t)
		c := cache.NewRedisCache(client, time.Minute)
		s.Close()

		_, err := c.Get(ctx, "catalog:accounts:")
		require.Error(t, err)
		assert.Contains(t, err.Error(), cache.ErrorFailedToGet)

		err = c.Set(ctx, "catalog:accounts:", "[]", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), cache.ErrorFailedToSet)
	})
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()
	s, client := mockRedisServer(t)
	c := cache.NewRedisCache(client, time.Minute)

	require.NoError(t, c.Set(ctx, "catalog:accounts:", "[]", 0))
	require.NoError(t, c.Delete(ctx, "catalog:accounts:"))
	require.NoError(t, c.Delete(ctx, "catalog:accounts:"))

	assert.False(t, s.Exists("catalog:accounts:"))
}

func TestRedisCache_DeletePrefix(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only matching keys", func(t *testing.T) {
		s, client := mockRedisServer(t)
		c := cache.NewRedisCache(client, time.Minute)

		for i := range 250 {
			require.NoError(t, s.Set("catalog:accounts:"+time.Duration(i).String(), "[]"))
		}
		require.NoError(t, s.Set("storefront:language", "id"))

		require.NoError(t, c.DeletePrefix(ctx, "catalog:"))

		assert.Equal(t, []string{"storefront:language"}, s.Keys())
	})

	t.Run("nothing to delete", func(t *testing.T) {
		_, client := mockRedisServer(t)
		c := cache.NewRedisCache(client, time.Minute)

		assert.NoError(t, c.DeletePrefix(ctx, "catalog:"))
	})
}
