package commands

import (
	"errors"

	"menu/internal/core/domain/model/kernel"
	"menu/internal/pkg/guard"
)

var (
	ErrRegisterNutritionFactsCommandIsNotConstructed = errors.New(
		"RegisterNutritionFactsCommand must be created via NewRegisterNutritionFactsCommand constructor",
	)
)

// RegisterNutritionFactsCommand represents a request to store a nutrition label.
// Calories and fat are optional; a nil pointer leaves the builder default (zero).
// Quantities are not range checked.
//
// Example:
//
//	calories := 100
//	cmd, err := NewRegisterNutritionFactsCommand(kernel.NewUUID(), 240, 8, &calories, nil)
type RegisterNutritionFactsCommand struct { //nolint:recvcheck //using for validation
	labelID     kernel.UUID
	servingSize int
	servings    int
	calories    *int
	fat         *int

	guard guard.ConstructorGuard
}

// NewRegisterNutritionFactsCommand creates the command. Only the label ID is validated.
func NewRegisterNutritionFactsCommand(
	labelID kernel.UUID,
	servingSize int,
	servings int,
	calories *int,
	fat *int,
) (RegisterNutritionFactsCommand, error) {
	cmd := RegisterNutritionFactsCommand{
		servingSize: servingSize,
		servings:    servings,
		calories:    copyInt(calories),
		fat:         copyInt(fat),
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setLabelID(labelID); err != nil {
		return RegisterNutritionFactsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterNutritionFactsCommand) Validate() error {
	return c.guard.Validate(ErrRegisterNutritionFactsCommandIsNotConstructed)
}

// LabelID returns the identifier the facts are stored under.
func (c RegisterNutritionFactsCommand) LabelID() kernel.UUID {
	return c.labelID
}

// ServingSize returns the required serving size.
func (c RegisterNutritionFactsCommand) ServingSize() int {
	return c.servingSize
}

// Servings returns the required number of servings.
func (c RegisterNutritionFactsCommand) Servings() int {
	return c.servings
}

// Calories returns the calories and whether they were supplied.
func (c RegisterNutritionFactsCommand) Calories() (int, bool) {
	if c.calories == nil {
		return 0, false
	}
	return *c.calories, true
}

// Fat returns the fat and whether it was supplied.
func (c RegisterNutritionFactsCommand) Fat() (int, bool) {
	if c.fat == nil {
		return 0, false
	}
	return *c.fat, true
}

func (c *RegisterNutritionFactsCommand) setLabelID(labelID kernel.UUID) error {
	if err := labelID.Validate(); err != nil {
		return err
	}

	c.labelID = labelID
	return nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
