package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrVerifyOTPCommandIsNotConstructed = errors.New(
	"VerifyOTPCommand must be created via NewVerifyOTPCommand constructor",
)

// VerifyOTPCommand checks a code previously sent to a phone.
type VerifyOTPCommand struct { //nolint:recvcheck //using for validation
	phone kernel.Phone
	code  string

	guard guard.ConstructorGuard
}

// NewVerifyOTPCommand creates the command.
func NewVerifyOTPCommand(phone, code string) (VerifyOTPCommand, error) {
	p, err := kernel.NewPhone(phone)
	code = strings.TrimSpace(code)

	var codeErr error
	if code == "" {
		codeErr = errs.NewValueIsRequiredError("otp code")
	}
	if err = errors.Join(err, codeErr); err != nil {
		return VerifyOTPCommand{}, err
	}

	return VerifyOTPCommand{phone: p, code: code, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyOTPCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOTPCommandIsNotConstructed)
}

// Phone returns the normalized phone.
func (c VerifyOTPCommand) Phone() kernel.Phone {
	return c.phone
}

// Code returns the submitted code.
func (c VerifyOTPCommand) Code() string {
	return c.code
}
