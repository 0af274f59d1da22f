package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize bounds an LRU store when no size is given
const DefaultSize = 128

// LRU is a bounded Store with least-recently-used eviction.
type LRU[V any] struct {
	inner   *lru.Cache[string, V]
	maxSize int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewLRU creates an LRU store holding at most size entries.
// Sizes below 1 fall back to DefaultSize.
func NewLRU[V any](size int) *LRU[V] {
	if size < 1 {
		size = DefaultSize
	}
	inner, err := lru.New[string, V](size)
	if err != nil {
		// lru.New only fails for non-positive sizes, which are rewritten above
		panic(err)
	}
	return &LRU[V]{inner: inner, maxSize: size}
}

// Get returns the cached value for key, if present
func (c *LRU[V]) Get(key string) (V, bool) {
	v, ok := c.inner.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Add stores a value under key
func (c *LRU[V]) Add(key string, value V) {
	if evicted := c.inner.Add(key, value); evicted {
		c.evictions.Add(1)
	}
}

// Purge drops every entry
func (c *LRU[V]) Purge() {
	c.inner.Purge()
}

// Len reports the number of cached entries
func (c *LRU[V]) Len() int {
	return c.inner.Len()
}

// Stats returns a snapshot of the store's counters
func (c *LRU[V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Size:      c.inner.Len(),
		MaxSize:   c.maxSize,
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   hitRate,
	}
}
