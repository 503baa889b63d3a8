package queries

import (
	"context"

	"menu/internal/core/domain/model/order"
	"menu/internal/core/domain/services"
	"menu/internal/core/ports"
)

// GetOrdersQueryHandler reads orders through the order repository and hands
// them to OrderTriage, so urgent orders come first and the rest keep insertion
// order.
type GetOrdersQueryHandler struct {
	repository ports.OrderRepository
	triage     services.OrderTriage
}

// NewGetOrdersQueryHandler creates the handler.
func NewGetOrdersQueryHandler(repository ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		repository: repository,
		triage:     services.NewOrderTriage(),
	}
}

// Handle executes the query. An empty store yields an empty, non-nil slice.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		stored []*order.Order
		err    error
	)
	if query.UrgentOnly() {
		stored, err = h.repository.ListUrgent(ctx)
	} else {
		stored, err = h.repository.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	queue, err := h.triage.Prioritize(stored)
	if err != nil {
		return nil, err
	}

	response := make([]GetOrdersQueryResponse, 0, len(queue))
	for _, o := range queue {
		response = append(response, GetOrdersQueryResponse{
			Reference: o.ID(),
			Urgent:    o.IsUrgent(),
			Common:    o.IsCommon(),
		})
	}

	return response, nil
}
