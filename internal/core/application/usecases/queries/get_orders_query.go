package queries

import (
	"errors"

	"menu/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves stored orders, urgent ones first.
// With urgentOnly set, non-urgent orders are left out.
//
// Example:
//
//	query := NewGetOrdersQuery(false)
//	handler := NewGetOrdersQueryHandler(uow.OrderRepository())
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQuery struct {
	urgentOnly bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates the query.
func NewGetOrdersQuery(urgentOnly bool) GetOrdersQuery {
	return GetOrdersQuery{
		urgentOnly: urgentOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// UrgentOnly reports whether non-urgent orders are filtered out.
func (q GetOrdersQuery) UrgentOnly() bool {
	return q.urgentOnly
}

// GetOrdersQueryResponse is one order as seen by readers.
type GetOrdersQueryResponse struct {
	Reference string
	Urgent    bool
	Common    bool
}
