package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Mode is how the customer receives the order.
type Mode string

const (
	// Takeaway orders are collected at the counter.
	Takeaway Mode = "TAKEAWAY"

	// Delivery orders are brought to the customer's address.
	Delivery Mode = "DELIVERY"
)

// ParseMode validates a wire value and returns the matching Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate rejects anything outside the closed set {TAKEAWAY, DELIVERY}.
func (m Mode) Validate() error {
	if m != Takeaway && m != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%q is not a valid mode", string(m)))
	}
	return nil
}

// String returns the wire value of the mode.
func (m Mode) String() string {
	return string(m)
}
