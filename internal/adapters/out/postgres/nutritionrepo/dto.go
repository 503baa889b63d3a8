// Package nutritionrepo persists nutrition labels with GORM.
package nutritionrepo

import (
	"menu/internal/core/domain/model/kernel"
	"menu/internal/core/domain/model/nutrition"

	"github.com/google/uuid"
)

// NutritionFactsDTO is the row layout of the nutrition_facts table.
type NutritionFactsDTO struct {
	LabelID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServingSize int       `gorm:"not null"`
	Servings    int       `gorm:"not null"`
	Calories    int       `gorm:"not null"`
	Fat         int       `gorm:"not null"`
}

// TableName overrides GORM's default naming convention.
func (NutritionFactsDTO) TableName() string {
	return "nutrition_facts"
}

func fromDomain(labelID kernel.UUID, facts nutrition.Facts) NutritionFactsDTO {
	return NutritionFactsDTO{
		LabelID:     labelID.Bytes(),
		ServingSize: facts.ServingSize(),
		Servings:    facts.Servings(),
		Calories:    facts.Calories(),
		Fat:         facts.Fat(),
	}
}

// toDomain rebuilds the record through the builder, the only path that yields
// valid Facts.
func toDomain(dto NutritionFactsDTO) nutrition.Facts {
	return nutrition.NewBuilder(dto.ServingSize, dto.Servings).
		Calories(dto.Calories).
		Fat(dto.Fat).
		Build()
}
