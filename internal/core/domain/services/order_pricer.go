package services

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// ErrMenuItemNotOrderable is returned when a requested item is hidden from the menu.
var ErrMenuItemNotOrderable = errors.New("menu item is not orderable")

// LineRequest is a customer's request for qty units of a menu item.
type LineRequest struct {
	MenuItemID int64
	Qty        int
}

// OrderPricer captures current menu prices into order lines.
//
// Business rules:
//   - Every requested item must exist in the catalog and be visible
//   - Quantities must be positive
//   - The line keeps the item name and price as they are now; later menu
//     changes do not reach existing orders
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price builds order lines for requests using catalog, keyed by menu item id.
//
// Returns:
//   - []order.Line in request order
//   - ObjectNotFoundError for unknown items, ErrMenuItemNotOrderable for hidden
//     ones, and validation errors for bad quantities, joined together
func (OrderPricer) Price(requests []LineRequest, catalog map[int64]menu.Item) ([]order.Line, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}

	lines := make([]order.Line, 0, len(requests))
	var problems []error

	for _, req := range requests {
		item, ok := catalog[req.MenuItemID]
		if !ok {
			problems = append(problems, errs.NewObjectNotFoundError("menu item", fmt.Sprint(req.MenuItemID)))
			continue
		}
		if !item.Orderable() {
			problems = append(problems, fmt.Errorf("%w: %s", ErrMenuItemNotOrderable, item.Name))
			continue
		}

		line, err := order.NewLine(item.ID, item.Name, item.Price, req.Qty)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		lines = append(lines, line)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return lines, nil
}
