package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one menu item and quantity within an order.
//
// The item name and unit price are captured when the order is placed, so later
// menu edits never change what the customer was charged.
type Line struct {
	menuItemID int64
	name       string
	unitPrice  kernel.Money
	qty        int

	guard guard.ConstructorGuard
}

// NewLine creates a line with a captured price.
//
// Parameters:
//   - menuItemID: identifier of the referenced menu item (positive)
//   - name: menu item name at the time of ordering
//   - unitPrice: menu price at the time of ordering
//   - qty: positive quantity
func NewLine(menuItemID int64, name string, unitPrice kernel.Money, qty int) (Line, error) {
	if menuItemID <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"menu item id", fmt.Errorf("%d is not greater than 0", menuItemID))
	}
	if err := unitPrice.Validate(); err != nil {
		return Line{}, err
	}
	if qty <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", qty))
	}

	return Line{
		menuItemID: menuItemID,
		name:       name,
		unitPrice:  unitPrice,
		qty:        qty,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was built by NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// MenuItemID returns the referenced menu item.
func (l Line) MenuItemID() int64 {
	return l.menuItemID
}

// Name returns the captured item name.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the captured unit price.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Qty returns the quantity.
func (l Line) Qty() int {
	return l.qty
}

// Subtotal returns qty × unit price.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.Mul(l.qty)
}
