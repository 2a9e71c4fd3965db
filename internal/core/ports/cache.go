package ports

import (
	"context"
	"time"
)

// Cache defines a minimal key-value cache contract with per-entry TTL.
// A read past an entry's expiry behaves as a miss. Implementations should
// degrade gracefully (returning an error without crashing callers) so that
// application logic can fall through to the upstream source.
type Cache interface {
	// Get returns the raw bytes for key. ok=false if not found or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for key, unconditionally overwriting any prior entry
	// and resetting its expiry to now+ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the key; absence is not an error.
	Delete(ctx context.Context, key string) error
}
