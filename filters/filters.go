// Package filters provides ready-made matching functions for visible-item
// filtering. Every filter is deterministic: the same query and item slice
// always produce the same result, which keeps memoized results valid.
package filters

import "strings"

// Substring matches items whose display text contains the query,
// case-insensitive. Matching items keep their original order. An empty
// query matches everything.
func Substring[T any](text func(T) string) func(query string, items []T) []T {
	return func(query string, items []T) []T {
		if query == "" {
			out := make([]T, len(items))
			copy(out, items)
			return out
		}

		q := strings.ToLower(query)
		out := make([]T, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(text(item)), q) {
				out = append(out, item)
			}
		}
		return out
	}
}

// Prefix matches items whose display text starts with the query,
// case-insensitive. Matching items keep their original order.
func Prefix[T any](text func(T) string) func(query string, items []T) []T {
	return func(query string, items []T) []T {
		if query == "" {
			out := make([]T, len(items))
			copy(out, items)
			return out
		}

		q := strings.ToLower(query)
		out := make([]T, 0, len(items))
		for _, item := range items {
			if strings.HasPrefix(strings.ToLower(text(item)), q) {
				out = append(out, item)
			}
		}
		return out
	}
}
