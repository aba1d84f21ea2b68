// Package listquery filters, sorts and paginates in-memory record slices.
//
// Every list endpoint of the API runs its entity slice through Run: a
// case-insensitive search across the schema's text fields, exact matches on
// categorical fields, an optional stable sort, then a fixed-size page.
package listquery

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FilterAll is the filter value that matches every record.
const FilterAll = "all"

// ErrUnknownField is returned when criteria reference a field the schema does not declare.
var ErrUnknownField = errors.New("unknown field")

// Schema declares how a record type can be searched, filtered and sorted.
type Schema[T any] struct {
	// Text holds the fields matched by Criteria.Search.
	Text map[string]func(T) string
	// Fields holds the categorical fields usable in Criteria.Filters.
	Fields map[string]func(T) string
	// Sorts holds comparators usable in Criteria.Sort. A comparator reports
	// whether a sorts before b in ascending order.
	Sorts map[string]func(a, b T) bool
}

// Criteria is the set of active search, filter, sort and paging values.
type Criteria struct {
	Search   string
	Filters  map[string]string
	Sort     string
	Desc     bool
	Page     int
	PageSize int
}

// Result is a single page of filtered records.
type Result[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Validate reports whether every filter and sort key in c is declared by the schema.
func (s Schema[T]) Validate(c Criteria) error {
	for key := range c.Filters {
		if _, ok := s.Fields[key]; !ok {
			return fmt.Errorf("filter %q: %w", key, ErrUnknownField)
		}
	}
	if sortKey := strings.TrimSpace(c.Sort); sortKey != "" {
		if _, ok := s.Sorts[sortKey]; !ok {
			return fmt.Errorf("sort %q: %w", sortKey, ErrUnknownField)
		}
	}
	return nil
}

// Filter returns the records of items matching the search and filter criteria.
// The output keeps the input order and never aliases items.
func Filter[T any](items []T, schema Schema[T], c Criteria) ([]T, error) {
	if err := schema.Validate(c); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(c.Search))
	active := activeFilters(c.Filters)

	result := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && !matchesSearch(item, schema.Text, needle) {
			continue
		}
		if !matchesFilters(item, schema.Fields, active) {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

// Sort orders items in place by the named comparator. Equal records keep their
// relative order.
func Sort[T any](items []T, schema Schema[T], key string, desc bool) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	less, ok := schema.Sorts[key]
	if !ok {
		return fmt.Errorf("sort %q: %w", key, ErrUnknownField)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
	return nil
}

// Paginate slices items into the requested 1-based page. A page below 1 is
// treated as the first page, a page past the end yields no items, and a
// non-positive pageSize returns everything as a single page.
func Paginate[T any](items []T, page, pageSize int) Result[T] {
	total := len(items)
	if page < 1 {
		page = 1
	}

	if pageSize <= 0 {
		out := make([]T, total)
		copy(out, items)
		totalPages := 1
		if total == 0 {
			totalPages = 0
		}
		return Result[T]{Items: out, Total: total, Page: page, PageSize: total, TotalPages: totalPages}
	}

	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	result := Result[T]{Items: []T{}, Total: total, Page: page, PageSize: pageSize, TotalPages: totalPages}

	// page <= totalPages keeps (page-1)*pageSize below total, so nothing overflows.
	if page > totalPages {
		return result
	}
	start := (page - 1) * pageSize
	end := total
	if total-start > pageSize {
		end = start + pageSize
	}
	result.Items = make([]T, end-start)
	copy(result.Items, items[start:end])
	return result
}

// Run filters, sorts and paginates items according to c.
func Run[T any](items []T, schema Schema[T], c Criteria) (Result[T], error) {
	filtered, err := Filter(items, schema, c)
	if err != nil {
		return Result[T]{}, err
	}
	if err := Sort(filtered, schema, c.Sort, c.Desc); err != nil {
		return Result[T]{}, err
	}
	return Paginate(filtered, c.Page, c.PageSize), nil
}

func activeFilters(filters map[string]string) map[string]string {
	active := make(map[string]string, len(filters))
	for key, value := range filters {
		normalized := strings.ToLower(strings.TrimSpace(value))
		if normalized == "" || normalized == FilterAll {
			continue
		}
		active[key] = normalized
	}
	return active
}

func matchesSearch[T any](item T, fields map[string]func(T) string, needle string) bool {
	for _, get := range fields {
		if strings.Contains(strings.ToLower(get(item)), needle) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, fields map[string]func(T) string, active map[string]string) bool {
	for key, expected := range active {
		if strings.ToLower(strings.TrimSpace(fields[key](item))) != expected {
			return false
		}
	}
	return true
}
