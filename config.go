package combokit

import (
	"fmt"

	"combokit/cache"
	"combokit/filters"
)

// Config carries the integrator-supplied functions the engine needs to work
// with an arbitrary item type. Build one with NewConfig and share it across
// every Update call for the widget's lifetime.
//
// ItemID must be deterministic and unique over the item list, and Filter must
// be a pure function of its arguments. The engine cannot detect violations;
// they surface as stale cache hits and misdirected selections.
type Config[T any] struct {
	// ItemID extracts a stable identifier from an item
	ItemID func(T) string
	// ItemInputValue extracts the display text used for matching and echo
	ItemInputValue func(T) string
	// IsEmptyItem marks a sentinel item that clears the selection when
	// chosen. Nil means no sentinel exists.
	IsEmptyItem func(T) bool
	// Filter narrows items for a query. Defaults to a case-insensitive
	// substring match over ItemInputValue.
	Filter func(query string, items []T) []T
	// Cache memoizes filtered results. Defaults to a bounded LRU store;
	// use cache.Null to disable memoization.
	Cache cache.Store[[]T]
	// CacheKey fingerprints a Model for cache lookups. The default covers
	// everything the built-in filtering depends on; replace it when a
	// custom Filter reads more of the model.
	CacheKey func(Model[T]) string
}

// ConfigOption overrides a Config default
type ConfigOption[T any] func(*Config[T])

// WithFilter replaces the default substring filter
func WithFilter[T any](filter func(query string, items []T) []T) ConfigOption[T] {
	return func(c *Config[T]) { c.Filter = filter }
}

// WithCache replaces the default LRU store
func WithCache[T any](store cache.Store[[]T]) ConfigOption[T] {
	return func(c *Config[T]) { c.Cache = store }
}

// WithCacheKey replaces the default fingerprint function
func WithCacheKey[T any](key func(Model[T]) string) ConfigOption[T] {
	return func(c *Config[T]) { c.CacheKey = key }
}

// WithEmptyItem marks the clear-selection sentinel
func WithEmptyItem[T any](isEmpty func(T) bool) ConfigOption[T] {
	return func(c *Config[T]) { c.IsEmptyItem = isEmpty }
}

// NewConfig builds a Config from the two mandatory extractors and fills in
// defaults for everything else
func NewConfig[T any](itemID, itemInputValue func(T) string, opts ...ConfigOption[T]) Config[T] {
	cfg := Config[T]{
		ItemID:         itemID,
		ItemInputValue: itemInputValue,
		Filter:         filters.Substring(itemInputValue),
		Cache:          cache.NewLRU[[]T](cache.DefaultSize),
		CacheKey:       DefaultCacheKey[T],
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultCacheKey fingerprints the model attributes the built-in filtering
// depends on: input-mode kind, visible limit, item count and input text. Two
// models with equal fingerprints produce the same visible items under the
// default Filter.
func DefaultCacheKey[T any](m Model[T]) string {
	kind := "select-only"
	if m.searchable {
		kind = "search"
	}
	return fmt.Sprintf("%s|%d|%d|%s", kind, m.visibleLimit, len(m.allItems), m.inputValue)
}
