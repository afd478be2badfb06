package cache

import (
	"sync"

	"artsdash/domain/core"
	"artsdash/domain/survey"
)

type entry struct {
	table *survey.Table
	err   error
}

// MemoryCache is the process-wide dataset cache. Entries live for the
// process lifetime; there is no eviction. Failures are cached alongside
// tables so a broken locator is not refetched on every render.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[core.LocatorKey]entry
}

// NewMemoryCache creates an empty cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[core.LocatorKey]entry),
	}
}

// Get returns the cached result for the key
func (c *MemoryCache) Get(key core.LocatorKey) (*survey.Table, error, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, nil, false
	}
	return e.table, e.err, true
}

// Put stores the outcome of one load
func (c *MemoryCache) Put(key core.LocatorKey, table *survey.Table, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{table: table, err: err}
}

// Len returns the number of cached locators
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
