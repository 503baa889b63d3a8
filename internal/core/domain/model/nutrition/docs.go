// Package nutrition provides the immutable nutrition Facts record and the Builder
// that produces it.
//
// Serving size and servings are required; calories and fat are optional and
// default to zero:
//
//	facts := nutrition.NewBuilder(240, 8).Calories(100).Fat(1).Build()
//
// The builder and the record share no storage. Building copies values out of the
// builder, and Facts exposes getters only.
package nutrition
