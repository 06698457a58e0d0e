package commands

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/keylock"
)

// TransitionOrderCommandHandler is the order lifecycle manager. It applies one
// status change, stores it with a conditional write and broadcasts the result.
//
// Writers of the same order are serialized in two layers: a per-order lock
// inside this process, and UpdateStatus which only succeeds while the stored
// status still equals the one the change was computed from. A lost race is
// reported as a VersionIsInvalidError and is safe to retry.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, broker, keylock.New[order.ID](), SystemClock, logger)
//	cmd, _ := NewAdvanceOrderCommand(orderID)
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // order is terminal or not in the required status
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case err != nil:
//	    return err
//	}
//	fmt.Println(result.Order.Status())
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	locks      *keylock.Locker[order.ID]
	clock      Clock
	logger     *slog.Logger
}

// NewTransitionOrderCommandHandler creates a lifecycle handler.
// locks must be shared by every handler that changes order status in this process.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	locks *keylock.Locker[order.ID],
	clock Clock,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		locks:      locks,
		clock:      clock,
		logger:     logger.With("component", "order-lifecycle"),
	}
}

// Handle applies the command and returns the updated order with its customer.
//
// Returns:
//   - ObjectNotFoundError when the order does not exist
//   - InvalidTransitionError when the action is not allowed from the current status;
//     the stored order is left untouched
//   - VersionIsInvalidError when a concurrent writer changed the order first
//   - any error from the storage layer
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (OrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResult{}, err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	customerRepo := uow.CustomerRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return OrderResult{}, err
	}

	previous := o.Status()
	now := h.clock()
	if err = apply(o, cmd, now); err != nil {
		return OrderResult{}, err
	}

	if err = orderRepo.UpdateStatus(ctx, o, previous); err != nil {
		return OrderResult{}, err
	}

	c, err := customerRepo.Get(ctx, o.CustomerID())
	if err != nil {
		return OrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResult{}, err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", o.ID(),
		"code", o.Code(),
		"action", cmd.Action(),
		"from", previous,
		"to", o.Status(),
	)

	publishDomainEvents(ctx, h.publisher, o, c, now)

	return OrderResult{Order: o, Customer: c}, nil
}

func apply(o *order.Order, cmd TransitionOrderCommand, now time.Time) error {
	switch cmd.Action() {
	case ActionAdvance:
		return o.Advance(now)
	case ActionAccept:
		return o.Accept(now)
	case ActionCancel:
		return o.Cancel(now)
	case ActionTarget:
		return applyTarget(o, cmd.Target(), now)
	default:
		return errs.NewInvalidTransitionError(o.Status().String(), string(cmd.Action()))
	}
}

// applyTarget maps an explicit target status onto accept, cancel or advance.
func applyTarget(o *order.Order, target order.Status, now time.Time) error {
	switch target {
	case order.Accepted:
		return o.Accept(now)
	case order.Cancelled:
		return o.Cancel(now)
	}

	next, err := o.Status().Next()
	if err != nil || next != target {
		return errs.NewInvalidTransitionError(o.Status().String(), "move to "+target.String())
	}
	return o.Advance(now)
}
