package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via one of the NewXxxOrderCommand constructors",
)

// Action names the lifecycle operation a TransitionOrderCommand performs.
type Action string

const (
	ActionAdvance Action = "advance"
	ActionAccept  Action = "accept"
	ActionCancel  Action = "cancel"
	// ActionTarget moves the order to an explicit status, which must be reachable
	// through one of the other actions.
	ActionTarget Action = "transition"
)

// TransitionOrderCommand requests one status change of an existing order.
//
// Example:
//
//	cmd, err := NewAcceptOrderCommand(order.ID(42))
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	action  Action
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command that moves the order one step forward.
func NewAdvanceOrderCommand(orderID order.ID) (TransitionOrderCommand, error) {
	return newTransitionOrderCommand(orderID, ActionAdvance, order.Unknown)
}

// NewAcceptOrderCommand creates a command that accepts a placed order.
func NewAcceptOrderCommand(orderID order.ID) (TransitionOrderCommand, error) {
	return newTransitionOrderCommand(orderID, ActionAccept, order.Unknown)
}

// NewCancelOrderCommand creates a command that cancels a placed order.
func NewCancelOrderCommand(orderID order.ID) (TransitionOrderCommand, error) {
	return newTransitionOrderCommand(orderID, ActionCancel, order.Unknown)
}

// NewTransitionOrderToCommand creates a command that moves the order to target.
// The handler resolves target against the current status: Cancelled cancels,
// Accepted accepts and the successor of the current status advances.
func NewTransitionOrderToCommand(orderID order.ID, target order.Status) (TransitionOrderCommand, error) {
	return newTransitionOrderCommand(orderID, ActionTarget, target)
}

func newTransitionOrderCommand(orderID order.ID, action Action, target order.Status) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		action: action,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(action, target),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to change.
func (c TransitionOrderCommand) OrderID() order.ID {
	return c.orderID
}

// Action returns the requested operation.
func (c TransitionOrderCommand) Action() Action {
	return c.action
}

// Target returns the requested status for ActionTarget, Unknown otherwise.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

func (c *TransitionOrderCommand) setOrderID(orderID order.ID) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(action Action, target order.Status) error {
	if action != ActionTarget {
		return nil
	}
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
