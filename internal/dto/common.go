package dto

import "github.com/noah-isme/school-admin-api/internal/listquery"

// PaginationMeta captures pagination metadata for list responses.
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// ListResponse is the payload of every list endpoint.
type ListResponse[T any] struct {
	Items      []T            `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}

// NewPaginationMeta converts a list-query result into response metadata.
func NewPaginationMeta[T any](result listquery.Result[T]) PaginationMeta {
	return PaginationMeta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalItems: result.Total,
		TotalPages: result.TotalPages,
	}
}

// NewListResponse wraps a page of records.
func NewListResponse[T any](result listquery.Result[T]) ListResponse[T] {
	items := result.Items
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Pagination: NewPaginationMeta(result)}
}

// MapListResponse wraps a page of records converted by fn.
func MapListResponse[T, R any](result listquery.Result[T], fn func(T) R) ListResponse[R] {
	items := make([]R, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, fn(item))
	}
	return ListResponse[R]{Items: items, Pagination: NewPaginationMeta(result)}
}
