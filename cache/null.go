package cache

// Null is a Store that never retains anything. It makes caching a no-op
// without branching at the call sites.
type Null[V any] struct{}

// NewNull creates a store that caches nothing
func NewNull[V any]() Null[V] {
	return Null[V]{}
}

// Get always misses
func (Null[V]) Get(string) (V, bool) {
	var zero V
	return zero, false
}

// Add discards the value
func (Null[V]) Add(string, V) {}

// Purge does nothing
func (Null[V]) Purge() {}

// Len is always zero
func (Null[V]) Len() int { return 0 }
