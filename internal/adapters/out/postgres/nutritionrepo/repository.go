package nutritionrepo

import (
	"context"
	"errors"

	"menu/internal/core/domain/model/kernel"
	"menu/internal/core/domain/model/nutrition"
	"menu/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNutritionRepository implements ports.NutritionRepository using GORM.
type GormNutritionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormNutritionRepository creates a new GORM nutrition repository.
func NewGormNutritionRepository(db *gorm.DB, tracker aggregateTracker) *GormNutritionRepository {
	return &GormNutritionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves facts under labelID.
func (r *GormNutritionRepository) Add(ctx context.Context, labelID kernel.UUID, facts nutrition.Facts) error {
	if err := errors.Join(labelID.Validate(), facts.Validate()); err != nil {
		return err
	}

	dto := fromDomain(labelID, facts)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("nutrition facts", labelID.String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(labelID.String(), facts)
	return nil
}

// Get retrieves the facts stored under labelID.
func (r *GormNutritionRepository) Get(ctx context.Context, labelID kernel.UUID) (nutrition.Facts, error) {
	if err := labelID.Validate(); err != nil {
		return nutrition.Facts{}, err
	}

	var dto NutritionFactsDTO
	if err := r.db.WithContext(ctx).First(&dto, "label_id = ?", labelID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nutrition.Facts{}, errs.NewObjectNotFoundError("labelId", labelID.String())
		}
		return nutrition.Facts{}, err
	}

	return toDomain(dto), nil
}
