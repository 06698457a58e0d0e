// Package customer provides the Customer entity, keyed by phone number.
package customer

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created through a constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a person who places orders. The phone number is the natural key:
// storing a profile for a known phone updates name and address instead of
// creating a second customer.
type Customer struct {
	id            int64
	phone         kernel.Phone
	name          string
	address       string
	phoneVerified bool

	isConstructed bool
}

// NewCustomer creates an unsaved customer profile.
func NewCustomer(phone kernel.Phone, name, address string, phoneVerified bool) (*Customer, error) {
	c := &Customer{phoneVerified: phoneVerified, isConstructed: true}

	if err := errors.Join(
		c.setPhone(phone),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.address = strings.TrimSpace(address)
	return c, nil
}

// RestoreCustomer rebuilds a stored customer.
func RestoreCustomer(id int64, phone kernel.Phone, name, address string, phoneVerified bool) (*Customer, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("customer id", fmt.Errorf("%d is not greater than 0", id))
	}

	c, err := NewCustomer(phone, name, address, phoneVerified)
	if err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

// Validate ensures the customer was built by a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the storage identifier (0 before the first upsert).
func (c *Customer) ID() int64 {
	return c.id
}

// Phone returns the normalized phone number.
func (c *Customer) Phone() kernel.Phone {
	return c.phone
}

// Name returns the display name.
func (c *Customer) Name() string {
	return c.name
}

// Address returns the delivery address; it may be empty for takeaway customers.
func (c *Customer) Address() string {
	return c.address
}

// PhoneVerified reports whether the phone passed OTP verification.
func (c *Customer) PhoneVerified() bool {
	return c.phoneVerified
}

func (c *Customer) setPhone(phone kernel.Phone) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
