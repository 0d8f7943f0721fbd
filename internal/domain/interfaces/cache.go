package interfaces

import (
	"context"
	"time"
)

// Cache abstracts the TTL cache used in front of the pricing service.
type Cache interface {
	// Get retrieves a value. Implementations return an error for missing or
	// expired keys.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error
}
