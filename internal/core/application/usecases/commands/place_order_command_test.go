package commands_test

import (
	"testing"

	"menu/internal/core/application/usecases/commands"
	"menu/internal/core/domain/model/order"
	"menu/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand("A-1", order.UrgentByFactory, true)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "A-1", cmd.Reference())
	assert.Equal(t, order.UrgentByFactory, cmd.Variant())
	assert.True(t, cmd.Flag())
}

func TestNewPlaceOrderCommand_EmptyReference(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand("", order.Default, false)

	require.NoError(t, err)
	assert.Empty(t, cmd.Reference())
}

func TestNewPlaceOrderCommand_UnknownVariant(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand("A-1", order.UnknownVariant, true)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPlaceOrderCommand_ZeroValue(t *testing.T) {
	var cmd commands.PlaceOrderCommand

	assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, cmd.Validate())
}
