package services

import (
	"menu/internal/core/domain/model/order"
	"menu/internal/core/domain/ordering"
)

// OrderTriage decides in which order pending orders are handled.
//
// Rules:
//   - Every order must be valid
//   - Urgent orders come before the others
//   - Inside each group the input order is kept
//
// Example usage:
//
//	triage := services.NewOrderTriage()
//	queue, err := triage.Prioritize(orders)
//	if err != nil {
//	    return err
//	}
type OrderTriage struct {
	cmp ordering.Comparator[*order.Order]
}

// NewOrderTriage creates a triage that orders by urgency only.
func NewOrderTriage() OrderTriage {
	return OrderTriage{cmp: ByUrgency}
}

// Prioritize returns a new slice with urgent orders first. The input slice is
// not modified.
func (t OrderTriage) Prioritize(orders []*order.Order) ([]*order.Order, error) {
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
	}

	queue := make([]*order.Order, len(orders))
	copy(queue, orders)
	ordering.StableSort(queue, t.cmp)

	return queue, nil
}

// ByUrgency orders urgent orders before non-urgent ones and treats orders with
// the same flag as equal.
func ByUrgency(a, b *order.Order) int {
	switch {
	case a.IsUrgent() == b.IsUrgent():
		return 0
	case a.IsUrgent():
		return -1
	default:
		return 1
	}
}
