package queries

import (
	"context"
	"errors"
	"slices"

	"menu/internal/core/domain/ordering"
	"menu/internal/pkg/guard"
)

var (
	ErrSortByLengthQueryIsNotConstructed = errors.New(
		"SortByLengthQuery must be created via NewSortByLengthQuery constructor",
	)
)

// SortByLengthQuery asks for text values ordered by length, shortest first.
// The query keeps its own copy of the values.
type SortByLengthQuery struct {
	values []string

	guard guard.ConstructorGuard
}

// NewSortByLengthQuery creates the query. Nil and empty inputs are allowed.
func NewSortByLengthQuery(values []string) SortByLengthQuery {
	return SortByLengthQuery{
		values: slices.Clone(values),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SortByLengthQuery) Validate() error {
	return q.guard.Validate(ErrSortByLengthQueryIsNotConstructed)
}

// Values returns a copy of the values to sort.
func (q SortByLengthQuery) Values() []string {
	return slices.Clone(q.values)
}

// SortByLengthQueryHandler sorts values with ordering.ByLength. It needs no storage.
type SortByLengthQueryHandler struct{}

// NewSortByLengthQueryHandler creates the handler.
func NewSortByLengthQueryHandler() SortByLengthQueryHandler {
	return SortByLengthQueryHandler{}
}

// Handle returns the values of the query stably sorted by length.
// The result is never nil.
func (h SortByLengthQueryHandler) Handle(_ context.Context, query SortByLengthQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	values := query.Values()
	if values == nil {
		values = []string{}
	}
	ordering.SortByLength(values)

	return values, nil
}
