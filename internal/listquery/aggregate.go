package listquery

import "sort"

// Sum adds up value(item) over items.
func Sum[T any](items []T, value func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += value(item)
	}
	return total
}

// SumBy groups items by key and adds up value(item) within each group.
func SumBy[T any](items []T, key func(T) string, value func(T) float64) map[string]float64 {
	totals := make(map[string]float64)
	for _, item := range items {
		totals[key(item)] += value(item)
	}
	return totals
}

// CountBy counts items per key.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// TopN returns up to n items ordered by score descending. Ties keep input order.
// A non-positive n returns every item.
func TopN[T any](items []T, n int, score func(T) float64) []T {
	ranked := make([]T, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
