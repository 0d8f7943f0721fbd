package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "markets:top", `[{"id":"bitcoin"}]`, time.Minute))

	value, err := cache.Get(ctx, "markets:top")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"bitcoin"}]`, value)
}

func TestMemoryCache_GetMissingKey(t *testing.T) {
	cache := NewMemoryCache()

	value, err := cache.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Empty(t, value)
}

func TestMemoryCache_GetExpiredKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short-lived", "value", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	value, err := cache.Get(ctx, "short-lived")

	assert.ErrorIs(t, err, ErrKeyExpired)
	assert.Empty(t, value)
	assert.Equal(t, 0, cache.Size(), "expired key is dropped on read")
}

func TestMemoryCache_SetOverwrites(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", "old", time.Minute))
	require.NoError(t, cache.Set(ctx, "key", "new", time.Minute))

	value, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "new", value)
	assert.Equal(t, 1, cache.Size())
}

func TestMemoryCache_SetSweepsExpiredEntries(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "stale-1", "v", time.Millisecond))
	require.NoError(t, cache.Set(ctx, "stale-2", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	require.NoError(t, cache.Set(ctx, "fresh", "v", time.Minute))

	assert.Equal(t, 1, cache.Size())
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, cache.Delete(ctx, "key"))

	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is fine.
	assert.NoError(t, cache.Delete(ctx, "key"))
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%10)
			_ = cache.Set(ctx, key, "value", time.Minute)
			_, _ = cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, cache.Size())
}
