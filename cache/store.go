package cache

import (
	"context"
	"time"
)

// Store holds cached response bodies by key.
type Store interface {
	// Get reports false when key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Invalidate removes every key starting with prefix.
	Invalidate(ctx context.Context, prefix string) error
}
