package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// ErrPhoneIsNotVerified is the cause reported when a profile is completed without a prior OTP check.
var ErrPhoneIsNotVerified = errors.New("phone has not been verified")

// CompleteProfileCommandHandler upserts the customer of a verified phone.
type CompleteProfileCommandHandler struct {
	store      ports.OTPStore
	uowFactory CustomerUoWFactory
}

// NewCompleteProfileCommandHandler creates the handler.
func NewCompleteProfileCommandHandler(store ports.OTPStore, uowFactory CustomerUoWFactory) CompleteProfileCommandHandler {
	return CompleteProfileCommandHandler{store: store, uowFactory: uowFactory}
}

// Handle returns the stored customer with PhoneVerified set.
func (h CompleteProfileCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteProfileCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	verified, err := h.store.IsVerified(ctx, cmd.Phone())
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, errs.NewValueIsInvalidErrorWithCause("phone", ErrPhoneIsNotVerified)
	}

	profile, err := customer.NewCustomer(cmd.Phone(), cmd.Name(), cmd.Address(), true)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.CustomerRepository().Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
