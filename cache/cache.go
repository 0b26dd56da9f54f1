// Package cache keeps Drive lookups for the duration of a run
package cache

import (
	"sync"
)

// Cache management
type Cache[V any] struct {
	mutex  sync.RWMutex
	items  map[string]V
	hits   int
	misses int
}

// NewCache creates a new cache instance
func NewCache[V any]() *Cache[V] {
	return &Cache[V]{
		items: make(map[string]V),
	}
}

// Set sets a value in the cache
func (c *Cache[V]) Set(key string, value V) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items[key] = value
}

// Get gets a value from the cache
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	value, found := c.items[key]
	if found {
		c.hits++
	} else {
		c.misses++
	}

	return value, found
}

// GetOrLoad returns the cached value for key or calls load and caches its
// result. Errors are not cached.
func (c *Cache[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	c.Set(key, value)

	return value, nil
}

// Stats returns the number of hits and misses
func (c *Cache[V]) Stats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.hits, c.misses
}
