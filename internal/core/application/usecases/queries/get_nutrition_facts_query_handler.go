package queries

import (
	"context"

	"menu/internal/core/ports"
)

// GetNutritionFactsQueryHandler reads a nutrition label through the nutrition
// repository.
type GetNutritionFactsQueryHandler struct {
	repository ports.NutritionRepository
}

// NewGetNutritionFactsQueryHandler creates the handler.
func NewGetNutritionFactsQueryHandler(repository ports.NutritionRepository) GetNutritionFactsQueryHandler {
	return GetNutritionFactsQueryHandler{repository: repository}
}

// Handle executes the query. A missing label yields errs.ErrObjectNotFound.
func (h GetNutritionFactsQueryHandler) Handle(
	ctx context.Context,
	query GetNutritionFactsQuery,
) (GetNutritionFactsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNutritionFactsQueryResponse{}, err
	}

	facts, err := h.repository.Get(ctx, query.LabelID())
	if err != nil {
		return GetNutritionFactsQueryResponse{}, err
	}

	return GetNutritionFactsQueryResponse{
		LabelID: query.LabelID(),
		Facts:   facts,
	}, nil
}
