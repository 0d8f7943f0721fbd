package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Adzz29/Crypto-Tracker/internal/domain/interfaces"
)

// cacheItem is one cached value with its expiry time.
type cacheItem struct {
	value     string
	expiresAt time.Time
}

func (item *cacheItem) isExpired() bool {
	return time.Now().After(item.expiresAt)
}

// MemoryCache implements the Cache interface with a local mutex-guarded map.
type MemoryCache struct {
	items map[string]*cacheItem
	mu    sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache instance.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: make(map[string]*cacheItem),
	}
}

var _ interfaces.Cache = (*MemoryCache)(nil)

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		return "", ErrKeyNotFound
	}

	if item.isExpired() {
		// Drop the expired key so the map does not grow without bound
		_ = c.Delete(ctx, key)
		return "", ErrKeyExpired
	}

	return item.value, nil
}

// Set stores a value with a TTL and sweeps expired entries while holding
// the lock anyway.
func (c *MemoryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for k, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, k)
		}
	}

	c.items[key] = &cacheItem{
		value:     value,
		expiresAt: now.Add(ttl),
	}

	return nil
}

// Delete removes a key from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}

// Size returns the number of entries, expired ones included.
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
