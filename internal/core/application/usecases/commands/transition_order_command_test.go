package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommands_ValidInput(t *testing.T) {
	advance, err := commands.NewAdvanceOrderCommand(7)
	require.NoError(t, err)
	assert.Equal(t, order.ID(7), advance.OrderID())
	assert.Equal(t, commands.ActionAdvance, advance.Action())
	assert.Equal(t, order.Unknown, advance.Target())
	require.NoError(t, advance.Validate())

	accept, err := commands.NewAcceptOrderCommand(7)
	require.NoError(t, err)
	assert.Equal(t, commands.ActionAccept, accept.Action())

	cancel, err := commands.NewCancelOrderCommand(7)
	require.NoError(t, err)
	assert.Equal(t, commands.ActionCancel, cancel.Action())

	target, err := commands.NewTransitionOrderToCommand(7, order.Ready)
	require.NoError(t, err)
	assert.Equal(t, commands.ActionTarget, target.Action())
	assert.Equal(t, order.Ready, target.Target())
}

func TestNewTransitionOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewAdvanceOrderCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewTransitionOrderToCommand_UnknownTarget(t *testing.T) {
	_, err := commands.NewTransitionOrderToCommand(1, order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTransitionOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.TransitionOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrTransitionOrderCommandIsNotConstructed)
}
