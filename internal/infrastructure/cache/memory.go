package cache

import (
	"sync"

	"github.com/AaronRai123/REASON/internal/ports"
)

// MemoryCache is a mutex-guarded in-memory document cache. Entries never
// expire and the cache grows unbounded until Clear; that matches the store
// contract, so there is no TTL or eviction machinery here.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]map[string]any
}

var _ ports.DocumentCache = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string]map[string]any)}
}

func (c *MemoryCache) Get(key string) (map[string]any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, found := c.items[key]
	return value, found
}

func (c *MemoryCache) Set(key string, value map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = value
}

func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]map[string]any)
}

func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
