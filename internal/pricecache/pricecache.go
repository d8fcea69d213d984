// Package pricecache keeps the TLD pricing table in memory. The table is
// large and changes rarely, so get_domain_pricing reuses it until the TTL
// lapses or the caller forces a refresh.
package pricecache

import (
	"sync"
	"time"
)

// DefaultTTL bounds how long a fetched pricing table is reused.
const DefaultTTL = time.Hour

// Cache is a single-entry TTL cache. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	fields  map[string]any
	fetched time.Time

	now func() time.Time // test hook
}

// New creates a cache with the given TTL. Non-positive TTL means entries
// never expire on their own (force refresh still works).
func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, now: time.Now}
}

// Get returns the cached pricing table, fetching it when absent, expired,
// or when force is set. A failed fetch leaves any previous entry intact
// and returns the fetch error.
func (c *Cache) Get(force bool, fetch func() (map[string]any, error)) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force && c.fields != nil && !c.expired() {
		return c.fields, nil
	}

	fields, err := fetch()
	if err != nil {
		if c.fields != nil && !c.expired() {
			return c.fields, nil
		}
		return nil, err
	}

	c.fields = fields
	c.fetched = c.now()
	return fields, nil
}

func (c *Cache) expired() bool {
	if c.ttl <= 0 {
		return false
	}
	return c.now().Sub(c.fetched) > c.ttl
}
