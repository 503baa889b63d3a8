package nutrition

import (
	"errors"

	"menu/internal/pkg/guard"
)

var (
	// ErrFactsAreNotConstructed is returned when Facts was not produced by a Builder
	// or one of the NewFacts constructors.
	ErrFactsAreNotConstructed = errors.New("Facts must be created via Builder.Build or a NewFacts constructor")
)

// Facts is the nutrition label of a dish.
//
// Facts is immutable: every field is private, there are only getters, and the
// value is returned by copy, so nothing a caller does afterwards can change a
// record it already holds. Values are not range checked; negative numbers are
// stored as given.
type Facts struct {
	// servingSize is the size of one serving, in millilitres or grams
	servingSize int

	// servings is the number of servings per container
	servings int

	// calories per serving, optional
	calories int

	// fat per serving in grams, optional
	fat int

	guard guard.ConstructorGuard
}

// NewFacts creates Facts with the required fields and no calories or fat.
func NewFacts(servingSize, servings int) Facts {
	return NewFactsWithCalories(servingSize, servings, 0)
}

// NewFactsWithCalories creates Facts with calories and no fat.
func NewFactsWithCalories(servingSize, servings, calories int) Facts {
	return NewFactsWithCaloriesAndFat(servingSize, servings, calories, 0)
}

// NewFactsWithCaloriesAndFat creates Facts with every field set.
//
// The NewFacts* family is the telescoping form: each one fills a default and
// delegates to the next. Past two optional fields it reads poorly at call sites
// (which int is fat?); use NewBuilder instead.
func NewFactsWithCaloriesAndFat(servingSize, servings, calories, fat int) Facts {
	return NewBuilder(servingSize, servings).
		Calories(calories).
		Fat(fat).
		Build()
}

// Validate reports whether f was produced by this package.
func (f Facts) Validate() error {
	return f.guard.Validate(ErrFactsAreNotConstructed)
}

// ServingSize returns the size of one serving.
func (f Facts) ServingSize() int {
	return f.servingSize
}

// Servings returns the number of servings per container.
func (f Facts) Servings() int {
	return f.servings
}

// Calories returns calories per serving.
func (f Facts) Calories() int {
	return f.calories
}

// Fat returns fat per serving.
func (f Facts) Fat() int {
	return f.fat
}

// IsEqual compares all four quantities.
func (f Facts) IsEqual(other Facts) bool {
	return f.servingSize == other.servingSize &&
		f.servings == other.servings &&
		f.calories == other.calories &&
		f.fat == other.fat
}
