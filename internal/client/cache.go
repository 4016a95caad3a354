package client

import "sync"

// Cache keys shared between flows. Reaching the rewarded state invalidates
// the wallet-cards key so the next navigation refetches the fresh card.
const (
	CacheKeyWalletStampCards = "wallet/stamp-cards"
	CacheKeyRewards          = "wallet/rewards"
)

// Cache is the device-local response cache. It is the only mutable state
// shared between flows; everything else is owned by a single flow instance.
// Invalidation is precise per key. Over-invalidation is tolerated, serving
// stale data as fresh is not.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]any)}
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
