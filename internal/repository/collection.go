package repository

import (
	"context"
	"errors"

	"github.com/noah-isme/school-admin-api/internal/listquery"
)

// ErrNotFound is returned when no record carries the requested identifier.
var ErrNotFound = errors.New("record not found")

// collection is a read-only in-memory table backing a repository.
type collection[T any] struct {
	items  []T
	id     func(T) string
	schema listquery.Schema[T]
}

func newCollection[T any](items []T, id func(T) string, schema listquery.Schema[T]) collection[T] {
	return collection[T]{items: items, id: id, schema: schema}
}

func (c collection[T]) list(ctx context.Context, criteria listquery.Criteria) (listquery.Result[T], error) {
	if err := ctx.Err(); err != nil {
		return listquery.Result[T]{}, err
	}
	return listquery.Run(c.items, c.schema, criteria)
}

func (c collection[T]) get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	for _, item := range c.items {
		if c.id(item) == id {
			return item, nil
		}
	}
	return zero, ErrNotFound
}

func (c collection[T]) where(ctx context.Context, match func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]T, 0)
	for _, item := range c.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (c collection[T]) all(ctx context.Context) ([]T, error) {
	return c.where(ctx, func(T) bool { return true })
}
