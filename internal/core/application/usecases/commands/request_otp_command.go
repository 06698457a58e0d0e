package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrRequestOTPCommandIsNotConstructed = errors.New(
	"RequestOTPCommand must be created via NewRequestOTPCommand constructor",
)

// RequestOTPCommand asks for a one-time code to be sent to a phone.
type RequestOTPCommand struct { //nolint:recvcheck //using for validation
	phone kernel.Phone

	guard guard.ConstructorGuard
}

// NewRequestOTPCommand normalizes phone and creates the command.
func NewRequestOTPCommand(phone string) (RequestOTPCommand, error) {
	p, err := kernel.NewPhone(phone)
	if err != nil {
		return RequestOTPCommand{}, err
	}
	return RequestOTPCommand{phone: p, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestOTPCommand) Validate() error {
	return c.guard.Validate(ErrRequestOTPCommandIsNotConstructed)
}

// Phone returns the normalized phone.
func (c RequestOTPCommand) Phone() kernel.Phone {
	return c.phone
}
