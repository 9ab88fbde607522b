// ABOUTME: In-memory cache implementation backed by an expiring key store
// ABOUTME: Default cache for single-process deployments, TTL per entry

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// cleanupInterval is how often expired entries are purged
const cleanupInterval = 10 * time.Minute

// MemoryCache implements the Cache interface using in-process storage
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	data, ok := v.([]byte)
	if !ok {
		return nil, false
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

// Set stores a value with the given TTL. A zero TTL means no expiration.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	copied := make([]byte, len(value))
	copy(copied, value)

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.store.Set(key, copied, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.store.Delete(key)
	return nil
}

// Close releases cache resources; a no-op for the in-memory backend
func (c *MemoryCache) Close() error {
	return nil
}
