package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value  []byte
	expiry time.Time
}

func (e *entry) expired(now time.Time) bool {
	return now.After(e.expiry)
}

// MemoryCache implements ports.Cache with a process-local map and per-entry
// TTL. Expiration is lazy: an expired entry is purged on the read that finds
// it, there is no background sweep. There is no capacity bound either, which
// is acceptable only because cached payloads are small, bounded-cardinality
// listings. The zero TTL on Set falls back to the configured default.
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]*entry
	defaultTTL time.Duration
}

// NewMemoryCache creates an explicitly-constructed cache instance with the
// given default TTL. Callers inject it rather than sharing a package global.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]*entry),
		defaultTTL: defaultTTL,
	}
}

// Get implements ports.Cache. It cannot fail; the error is always nil.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if e.expired(time.Now()) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have
		// replaced the entry since the read lock was dropped.
		if cur, ok := c.entries[key]; ok && cur == e {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set implements ports.Cache. It unconditionally overwrites any prior entry.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.mu.Lock()
	c.entries[key] = &entry{value: value, expiry: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Delete implements ports.Cache; absence is not an error.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, including ones that have
// expired but have not been read since.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
