package client

import (
	"strings"
	"sync"
)

// queryCache holds decoded read results for one user session. Mutations
// invalidate by key prefix (the affected record family), logout clears
// everything. It is deliberately in-process: the cache is session state,
// not shared infrastructure.
type queryCache struct {
	mu      sync.Mutex
	entries map[string]any
}

func newQueryCache() *queryCache {
	return &queryCache{entries: map[string]any{}}
}

func (c *queryCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *queryCache) set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

func (c *queryCache) invalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

func (c *queryCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string]any{}
}
