// ABOUTME: Cache interface abstracting the caching layer implementation
// ABOUTME: Allows swapping between memory and Redis backends

package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for caching operations
type Cache interface {
	// Get retrieves a value from the cache, returning false when absent
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value in the cache with a TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache
	Close() error
}
