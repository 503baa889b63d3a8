package commands_test

import (
	"testing"

	"menu/internal/core/application/usecases/commands"
	"menu/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterNutritionFactsCommand_AllFields(t *testing.T) {
	id := kernel.NewUUID()
	calories, fat := 100, 1

	cmd, err := commands.NewRegisterNutritionFactsCommand(id, 240, 8, &calories, &fat)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.LabelID().IsEqual(id))
	assert.Equal(t, 240, cmd.ServingSize())
	assert.Equal(t, 8, cmd.Servings())
	gotCalories, ok := cmd.Calories()
	assert.True(t, ok)
	assert.Equal(t, 100, gotCalories)
	gotFat, ok := cmd.Fat()
	assert.True(t, ok)
	assert.Equal(t, 1, gotFat)
}

func TestNewRegisterNutritionFactsCommand_OptionalFieldsOmitted(t *testing.T) {
	cmd, err := commands.NewRegisterNutritionFactsCommand(kernel.NewUUID(), 240, 8, nil, nil)

	require.NoError(t, err)
	_, ok := cmd.Calories()
	assert.False(t, ok)
	_, ok = cmd.Fat()
	assert.False(t, ok)
}

func TestNewRegisterNutritionFactsCommand_CopiesOptionalValues(t *testing.T) {
	calories := 100
	cmd, _ := commands.NewRegisterNutritionFactsCommand(kernel.NewUUID(), 240, 8, &calories, nil)

	calories = 999

	got, _ := cmd.Calories()
	assert.Equal(t, 100, got)
}

func TestNewRegisterNutritionFactsCommand_InvalidLabelID(t *testing.T) {
	_, err := commands.NewRegisterNutritionFactsCommand(kernel.UUID{}, 240, 8, nil, nil)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRegisterNutritionFactsCommand_NegativeValuesAccepted(t *testing.T) {
	fat := -4

	cmd, err := commands.NewRegisterNutritionFactsCommand(kernel.NewUUID(), -1, -2, nil, &fat)

	require.NoError(t, err)
	assert.Equal(t, -1, cmd.ServingSize())
}
