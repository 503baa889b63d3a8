package nutrition

import "menu/internal/pkg/guard"

// Builder accumulates the fields of a Facts record.
//
// Required fields are fixed by NewBuilder; optional fields start at zero and can
// be set in any order through the chained setters. Build copies the current
// values into a new Facts. The builder keeps no reference to what it built, so
// it can be reused or discarded.
//
// Example:
//
//	cola := nutrition.NewBuilder(240, 8).
//	    Calories(100).
//	    Fat(1).
//	    Build()
type Builder struct {
	servingSize int
	servings    int

	calories int
	fat      int
}

// NewBuilder starts a builder with the required fields.
func NewBuilder(servingSize, servings int) *Builder {
	return &Builder{
		servingSize: servingSize,
		servings:    servings,
	}
}

// Calories sets calories per serving.
func (b *Builder) Calories(val int) *Builder {
	b.calories = val
	return b
}

// Fat sets fat per serving.
func (b *Builder) Fat(val int) *Builder {
	b.fat = val
	return b
}

// Build returns a new Facts holding the builder's current values.
// Calling it again returns an equal, independent record.
func (b *Builder) Build() Facts {
	return Facts{
		servingSize: b.servingSize,
		servings:    b.servings,
		calories:    b.calories,
		fat:         b.fat,
		guard:       guard.NewConstructorGuard(),
	}
}
