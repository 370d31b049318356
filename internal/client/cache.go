package client

import (
	"strings"
	"sync"
)

// Cache invalidation keys, one namespace per entity type. Todo listings are
// cached per filter under the "todos" prefix so one invalidation clears all
// of them.
const (
	keyCategories = "categories"
	keyLabels     = "labels"
	keyTodos      = "todos"
)

// cache is a small read-through cache. Reads fill it, mutations invalidate
// whole namespaces rather than merging responses in place.
type cache struct {
	mu      sync.Mutex
	entries map[string]any
}

func newCache() *cache {
	return &cache{entries: make(map[string]any)}
}

func (c *cache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *cache) put(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

// invalidate drops every entry whose key starts with one of the prefixes.
func (c *cache) invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(c.entries, key)
				break
			}
		}
	}
}
