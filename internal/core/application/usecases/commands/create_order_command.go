package commands

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIsRequired = errors.New("customer id or customer phone is required")
)

// CustomerRef identifies the ordering customer either by ID or by contact
// details. When ID is zero the contact is upserted by phone.
type CustomerRef struct {
	ID      int64
	Phone   string
	Name    string
	Address string
}

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    CustomerRef{Phone: "+201001234567", Name: "Mona", Address: "12 Nile St"},
//	    order.Delivery,
//	    []services.LineRequest{{MenuItemID: 1, Qty: 2}},
//	    nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	phone      kernel.Phone
	name       string
	address    string
	mode       order.Mode
	lines      []services.LineRequest
	total      *kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// clientTotal is optional; when set it must equal the total computed from menu prices.
func NewCreateOrderCommand(
	customer CustomerRef,
	mode order.Mode,
	lines []services.LineRequest,
	clientTotal *kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setMode(mode),
		cmd.setLines(lines),
		cmd.setTotal(clientTotal),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the existing customer, or 0 when the contact should be upserted.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// Phone returns the contact phone (empty when CustomerID is set).
func (c CreateOrderCommand) Phone() kernel.Phone {
	return c.phone
}

// Name returns the contact name.
func (c CreateOrderCommand) Name() string {
	return c.name
}

// Address returns the contact address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Mode returns how the order will be fulfilled.
func (c CreateOrderCommand) Mode() order.Mode {
	return c.mode
}

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []services.LineRequest {
	lines := make([]services.LineRequest, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// ClientTotal returns the total the client expects to pay, or nil.
func (c CreateOrderCommand) ClientTotal() *kernel.Money {
	return c.total
}

// MenuItemIDs returns the distinct menu items referenced by the lines.
func (c CreateOrderCommand) MenuItemIDs() []int64 {
	seen := make(map[int64]struct{}, len(c.lines))
	ids := make([]int64, 0, len(c.lines))
	for _, l := range c.lines {
		if _, ok := seen[l.MenuItemID]; ok {
			continue
		}
		seen[l.MenuItemID] = struct{}{}
		ids = append(ids, l.MenuItemID)
	}
	return ids
}

func (c *CreateOrderCommand) setCustomer(ref CustomerRef) error {
	if ref.ID > 0 {
		c.customerID = ref.ID
		return nil
	}
	if ref.ID < 0 {
		return errs.NewValueIsInvalidErrorWithCause("customer id", fmt.Errorf("%d is not greater than 0", ref.ID))
	}
	if strings.TrimSpace(ref.Phone) == "" {
		return ErrCustomerIsRequired
	}

	phone, err := kernel.NewPhone(ref.Phone)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(ref.Name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	c.phone = phone
	c.name = name
	c.address = strings.TrimSpace(ref.Address)
	return nil
}

func (c *CreateOrderCommand) setMode(mode order.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.LineRequest) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	for i, l := range lines {
		if l.Qty <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("line %d quantity", i), fmt.Errorf("%d is not greater than 0", l.Qty))
		}
	}

	c.lines = make([]services.LineRequest, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateOrderCommand) setTotal(total *kernel.Money) error {
	if total == nil {
		return nil
	}
	if err := total.Validate(); err != nil {
		return err
	}

	t := *total
	c.total = &t
	return nil
}
