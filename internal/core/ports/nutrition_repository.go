package ports

import (
	"context"

	"menu/internal/core/domain/model/kernel"
	"menu/internal/core/domain/model/nutrition"
)

// NutritionRepository stores nutrition labels under a label identifier.
type NutritionRepository interface {
	// Add persists facts under labelID. An existing labelID is rejected with
	// errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, labelID kernel.UUID, facts nutrition.Facts) error

	// Get retrieves the facts stored under labelID or returns errs.ErrObjectNotFound.
	Get(ctx context.Context, labelID kernel.UUID) (nutrition.Facts, error)
}
