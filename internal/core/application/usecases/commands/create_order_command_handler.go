package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// ErrDailyOrderCapacityReached is returned once every code suffix of the
// current day has been handed out.
var ErrDailyOrderCapacityReached = errors.New("daily order capacity reached")

// CreateOrderCommandHandler is order intake. It resolves the customer, captures
// current menu prices, reserves an order code and stores the order in Placed
// status, all in one transaction. The new-order event is published after commit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, broker, SystemClock, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(result.Order.Code()) // AKF-20250101-0001
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	pricer     services.OrderPricer
	clock      Clock
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		pricer:     services.NewOrderPricer(),
		clock:      clock,
		logger:     logger.With("component", "order-intake"),
	}
}

// Handle places the order and returns it with its customer.
//
// Returns:
//   - ObjectNotFoundError for an unknown customer id or menu item
//   - validation errors for hidden menu items, bad contact data or a client
//     total that differs from the computed one
//   - any error from the storage layer
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (OrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := h.resolveCustomer(ctx, uow.CustomerRepository(), cmd)
	if err != nil {
		return OrderResult{}, err
	}

	catalog, err := uow.MenuRepository().GetByIDs(ctx, cmd.MenuItemIDs())
	if err != nil {
		return OrderResult{}, err
	}

	lines, err := h.pricer.Price(cmd.Lines(), catalog)
	if err != nil {
		return OrderResult{}, err
	}

	now := h.clock()
	orderRepo := uow.OrderRepository()

	seq, err := orderRepo.NextCodeSequence(ctx, now)
	if err != nil {
		return OrderResult{}, err
	}
	if seq > order.MaxDailySequence {
		return OrderResult{}, fmt.Errorf("%w: %d orders on %s", ErrDailyOrderCapacityReached, order.MaxDailySequence, order.CodeDay(now))
	}
	code, err := order.NewCode(now, seq)
	if err != nil {
		return OrderResult{}, err
	}

	o, err := order.NewOrder(c.ID(), code, cmd.Mode(), lines, now)
	if err != nil {
		return OrderResult{}, err
	}

	if expected := cmd.ClientTotal(); expected != nil && !expected.IsEqual(o.Total()) {
		return OrderResult{}, errs.NewValueIsInvalidErrorWithCause(
			"total amount",
			fmt.Errorf("client total %s differs from menu total %s", expected, o.Total()),
		)
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return OrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResult{}, err
	}

	h.logger.InfoContext(ctx, "order placed",
		"order_id", o.ID(),
		"code", o.Code(),
		"customer_id", c.ID(),
		"total", o.Total().String(),
	)

	publishDomainEvents(ctx, h.publisher, o, c, now)

	return OrderResult{Order: o, Customer: c}, nil
}

func (h CreateOrderCommandHandler) resolveCustomer(
	ctx context.Context,
	repo ports.CustomerRepository,
	cmd CreateOrderCommand,
) (*customer.Customer, error) {
	if cmd.CustomerID() > 0 {
		return repo.Get(ctx, cmd.CustomerID())
	}

	contact, err := customer.NewCustomer(cmd.Phone(), cmd.Name(), cmd.Address(), false)
	if err != nil {
		return nil, err
	}
	return repo.Upsert(ctx, contact)
}
