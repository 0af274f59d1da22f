package combokit

import "strings"

// VisibleItems derives the items the dropdown should show for the current
// model. In select-only mode, or in search mode before the user has typed,
// the filter is bypassed and the candidate list is shown as-is so the
// dropdown is never empty on first open. Results are capped at the model's
// visible limit.
//
// The returned slice may be shared with the cache and must not be modified.
func VisibleItems[T any](cfg Config[T], m Model[T]) []T {
	if !m.searchable || !m.hasSearched {
		return capItems(m.allItems, m.visibleLimit)
	}

	key := cacheKeyFor(cfg, m)
	if cfg.Cache != nil {
		if hit, ok := cfg.Cache.Get(key); ok {
			return hit
		}
	}

	visible := capItems(runFilter(cfg, m), m.visibleLimit)
	if cfg.Cache != nil {
		cfg.Cache.Add(key, visible)
	}
	return visible
}

func cacheKeyFor[T any](cfg Config[T], m Model[T]) string {
	if cfg.CacheKey != nil {
		return cfg.CacheKey(m)
	}
	return DefaultCacheKey(m)
}

func runFilter[T any](cfg Config[T], m Model[T]) []T {
	if cfg.Filter != nil {
		return cfg.Filter(m.inputValue, m.allItems)
	}
	// fallback for hand-built configs without a filter
	query := strings.ToLower(m.inputValue)
	out := make([]T, 0, len(m.allItems))
	for _, item := range m.allItems {
		if strings.Contains(strings.ToLower(cfg.ItemInputValue(item)), query) {
			out = append(out, item)
		}
	}
	return out
}

func capItems[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// visibleAt returns the visible item at index, if in range
func visibleAt[T any](cfg Config[T], m Model[T], index int) (T, bool) {
	var zero T
	if index < 0 {
		return zero, false
	}
	visible := VisibleItems(cfg, m)
	if index >= len(visible) {
		return zero, false
	}
	return visible[index], true
}
