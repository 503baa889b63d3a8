package ports

import (
	"context"

	"menu/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders.
type OrderRepository interface {
	// Add persists a new order. A second order with the same non-empty reference
	// is rejected with errs.ErrObjectAlreadyExists; empty references never collide.
	Add(ctx context.Context, o *order.Order) error

	// List returns every order in insertion order.
	List(ctx context.Context) ([]*order.Order, error)

	// ListUrgent returns urgent orders in insertion order.
	ListUrgent(ctx context.Context) ([]*order.Order, error)
}
