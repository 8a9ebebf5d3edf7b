// Package cache defines the key-value cache consumed by the like counter
// and its Redis implementation.
package cache

import (
	"context"
	"time"
)

// Cache is a minimal key-value cache. A missing key is an ordinary miss,
// not an error.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key with the given TTL (0 means no expiry).
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
