package filters

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Fuzzy matches like Substring but also tolerates typos: items whose text
// is within maxDistance edits of the query are included after the exact
// matches, closest first. Ties keep the original item order.
func Fuzzy[T any](text func(T) string, maxDistance int) func(query string, items []T) []T {
	return func(query string, items []T) []T {
		if query == "" {
			out := make([]T, len(items))
			copy(out, items)
			return out
		}

		q := strings.ToLower(query)

		type near struct {
			item     T
			distance int
		}

		out := make([]T, 0, len(items))
		var fuzzed []near
		for _, item := range items {
			lowered := strings.ToLower(text(item))
			if strings.Contains(lowered, q) {
				out = append(out, item)
				continue
			}
			if d := levenshtein.ComputeDistance(q, lowered); d <= maxDistance {
				fuzzed = append(fuzzed, near{item: item, distance: d})
			}
		}

		sort.SliceStable(fuzzed, func(i, j int) bool {
			return fuzzed[i].distance < fuzzed[j].distance
		})
		for _, n := range fuzzed {
			out = append(out, n.item)
		}
		return out
	}
}
