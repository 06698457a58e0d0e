package commands

import (
	"context"
	"errors"
	"log/slog"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// ErrOTPMismatch is the cause reported when a code is wrong, expired or already used.
var ErrOTPMismatch = errors.New("code does not match or has expired")

// VerifyOTPCommandHandler consumes a code and marks the phone as verified.
type VerifyOTPCommandHandler struct {
	store  ports.OTPStore
	logger *slog.Logger
}

// NewVerifyOTPCommandHandler creates the handler.
func NewVerifyOTPCommandHandler(store ports.OTPStore, logger *slog.Logger) VerifyOTPCommandHandler {
	return VerifyOTPCommandHandler{store: store, logger: logger.With("component", "auth")}
}

// Handle returns a ValueIsInvalidError when the code does not match. A matching
// code can be used only once.
func (h VerifyOTPCommandHandler) Handle(ctx context.Context, cmd VerifyOTPCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ok, err := h.store.ConsumeCode(ctx, cmd.Phone(), cmd.Code())
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("otp code", ErrOTPMismatch)
	}

	if err = h.store.MarkVerified(ctx, cmd.Phone(), VerifiedTTL); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "phone verified", "phone", cmd.Phone())
	return nil
}
