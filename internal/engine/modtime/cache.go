// Package modtime remembers the last known remote modification time of assets.
package modtime

import (
	"sync"
	"sync/atomic"
	"time"
)

type entry struct {
	checkedAt  time.Time
	modifiedAt time.Time
}

// Cache is a TTL cache of remote modification times keyed by asset id.
//
// Writes are serialized; reads never take the lock. A read racing a write
// observes either the old or the new entry, and both are valid answers.
type Cache struct {
	ttl     time.Duration
	mu      sync.Mutex
	entries sync.Map // string -> entry

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a cache whose entries are trusted for ttl after they were checked.
func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// Get returns the cached modification time of id.
// It reports false when the entry is absent or older than the TTL; expired entries are kept.
func (c *Cache) Get(id string) (time.Time, bool) {
	v, ok := c.entries.Load(id)
	if !ok {
		c.misses.Add(1)
		return time.Time{}, false
	}
	e, _ := v.(entry)
	if time.Since(e.checkedAt) > c.ttl {
		c.misses.Add(1)
		return time.Time{}, false
	}
	c.hits.Add(1)
	return e.modifiedAt, true
}

// Set records the modification time of id and restarts its TTL.
// The zero time means unknown and is ignored.
func (c *Cache) Set(id string, modifiedAt time.Time) {
	if modifiedAt.IsZero() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Store(id, entry{checkedAt: time.Now(), modifiedAt: modifiedAt})
}

// TTL returns the window during which entries are trusted.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Stats returns the number of fresh hits and misses served so far.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
