package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		cache := NewCacheRepository()

		require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))

		got, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)

		exists, err := cache.Exists(ctx, "k")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing key is a cache miss", func(t *testing.T) {
		cache := NewCacheRepository()

		_, err := cache.Get(ctx, "absent")

		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("expired key is a cache miss", func(t *testing.T) {
		cache := NewCacheRepository()
		require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Millisecond))

		time.Sleep(5 * time.Millisecond)

		_, err := cache.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrCacheMiss)

		exists, err := cache.Exists(ctx, "k")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete removes the key", func(t *testing.T) {
		cache := NewCacheRepository()
		require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))

		require.NoError(t, cache.Delete(ctx, "k"))

		_, err := cache.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}
