// Package menu provides the catalog entries that orders reference.
// The order core treats the menu as read-only reference data.
package menu

import (
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Item is a catalog entry.
type Item struct {
	ID          int64
	Name        string
	Price       kernel.Money
	Visible     bool
	Category    string
	Description string
	Image       string
}

// Validate checks the fields the order core depends on.
func (i Item) Validate() error {
	if i.ID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menu item id", fmt.Errorf("%d is not greater than 0", i.ID))
	}
	if strings.TrimSpace(i.Name) == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	return i.Price.Validate()
}

// Orderable reports whether customers can currently order the item.
func (i Item) Orderable() bool {
	return i.Visible
}
