package internal

import (
	"sync"
	"sync/atomic"
)

// FormatCache memoizes expensive formatter setup (printers, resolved option
// sets, date layouts) keyed by locale and resolved options. Entries are
// written once per key and never invalidated, so the cache grows with the
// template vocabulary only. It is safe for concurrent use.
type FormatCache struct {
	mu      sync.RWMutex
	entries map[string]any
	hits    atomic.Int64
	misses  atomic.Int64
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// HitRate returns hits as a fraction of all lookups
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// NewFormatCache creates an empty cache
func NewFormatCache() *FormatCache {
	return &FormatCache{
		entries: make(map[string]any),
	}
}

// Get returns the entry for key if present
func (c *FormatCache) Get(key string) (any, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return entry, ok
}

// GetOrCreate returns the entry for key, building and storing it with create
// on the first request. create runs at most once per key.
func (c *FormatCache) GetOrCreate(key string, create func() any) any {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return entry
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another writer may have filled the slot between the locks
	if entry, ok := c.entries[key]; ok {
		c.hits.Add(1)
		return entry
	}

	c.misses.Add(1)
	entry = create()
	c.entries[key] = entry
	return entry
}

// Len returns the number of cached entries
func (c *FormatCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Stats returns a snapshot of the cache statistics
func (c *FormatCache) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.Len(),
	}
}

// Clear removes all entries and resets statistics
func (c *FormatCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]any)
	c.hits.Store(0)
	c.misses.Store(0)
}
