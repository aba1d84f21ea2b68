package service

import (
	"math"
	"strings"

	"github.com/noah-isme/school-admin-api/internal/listquery"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ratePercent returns part/total as a percentage rounded to two decimals.
func ratePercent(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return round2(part / total * 100)
}

// withFilter returns a copy of c with key pinned to value.
func withFilter(c listquery.Criteria, key, value string) listquery.Criteria {
	filters := make(map[string]string, len(c.Filters)+1)
	for k, v := range c.Filters {
		filters[k] = v
	}
	filters[key] = value
	c.Filters = filters
	return c
}

// isAll reports whether a filter value selects every record.
func isAll(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, listquery.FilterAll)
}
