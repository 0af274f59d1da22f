// Package cache provides pluggable stores for memoizing computed item lists.
package cache

// Store is the interface the engine uses to memoize visible-item results.
// Implementations must be safe for concurrent use.
type Store[V any] interface {
	// Get returns the cached value for key, if present
	Get(key string) (V, bool)
	// Add stores a value under key, evicting older entries if needed
	Add(key string, value V)
	// Purge drops every entry
	Purge()
	// Len reports the number of cached entries
	Len() int
}

// Stats holds counters for a store that tracks its own effectiveness
type Stats struct {
	Size      int
	MaxSize   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}
