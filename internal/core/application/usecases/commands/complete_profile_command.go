package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCompleteProfileCommandIsNotConstructed = errors.New(
	"CompleteProfileCommand must be created via NewCompleteProfileCommand constructor",
)

// CompleteProfileCommand stores the name and address of a verified phone.
type CompleteProfileCommand struct { //nolint:recvcheck //using for validation
	phone   kernel.Phone
	name    string
	address string

	guard guard.ConstructorGuard
}

// NewCompleteProfileCommand creates the command. Name is required, address is optional.
func NewCompleteProfileCommand(phone, name, address string) (CompleteProfileCommand, error) {
	p, err := kernel.NewPhone(phone)
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err = errors.Join(err, nameErr); err != nil {
		return CompleteProfileCommand{}, err
	}

	return CompleteProfileCommand{
		phone:   p,
		name:    name,
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteProfileCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProfileCommandIsNotConstructed)
}

// Phone returns the normalized phone.
func (c CompleteProfileCommand) Phone() kernel.Phone {
	return c.phone
}

// Name returns the display name.
func (c CompleteProfileCommand) Name() string {
	return c.name
}

// Address returns the delivery address.
func (c CompleteProfileCommand) Address() string {
	return c.address
}
