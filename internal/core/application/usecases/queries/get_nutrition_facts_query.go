package queries

import (
	"errors"

	"menu/internal/core/domain/model/kernel"
	"menu/internal/core/domain/model/nutrition"
	"menu/internal/pkg/guard"
)

var (
	ErrGetNutritionFactsQueryIsNotConstructed = errors.New(
		"GetNutritionFactsQuery must be created via NewGetNutritionFactsQuery constructor",
	)
)

// GetNutritionFactsQuery retrieves one nutrition label by its identifier.
type GetNutritionFactsQuery struct { //nolint:recvcheck //using for validation
	labelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNutritionFactsQuery creates the query; the label ID must be valid.
func NewGetNutritionFactsQuery(labelID kernel.UUID) (GetNutritionFactsQuery, error) {
	if err := labelID.Validate(); err != nil {
		return GetNutritionFactsQuery{}, err
	}

	return GetNutritionFactsQuery{
		labelID: labelID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNutritionFactsQuery) Validate() error {
	return q.guard.Validate(ErrGetNutritionFactsQueryIsNotConstructed)
}

// LabelID returns the requested label identifier.
func (q GetNutritionFactsQuery) LabelID() kernel.UUID {
	return q.labelID
}

// GetNutritionFactsQueryResponse pairs a label identifier with its facts.
type GetNutritionFactsQueryResponse struct {
	LabelID kernel.UUID
	Facts   nutrition.Facts
}
