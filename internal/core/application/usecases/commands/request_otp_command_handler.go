package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"ordering/internal/core/ports"
)

const (
	// OTPTTL is how long a requested code stays valid.
	OTPTTL = 5 * time.Minute
	// VerifiedTTL is how long a verified phone may complete its profile.
	VerifiedTTL = 30 * time.Minute

	otpDigits = 6
)

// CodeGenerator produces one-time codes.
type CodeGenerator func() (string, error)

// RandomOTPCode returns a uniformly distributed six digit code from crypto/rand.
func RandomOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

// RequestOTPCommandHandler stores a fresh code for a phone and hands it to the sender.
// A new request replaces the previous code.
type RequestOTPCommandHandler struct {
	store     ports.OTPStore
	sender    ports.OTPSender
	generator CodeGenerator
	logger    *slog.Logger
}

// NewRequestOTPCommandHandler creates the handler.
func NewRequestOTPCommandHandler(
	store ports.OTPStore,
	sender ports.OTPSender,
	generator CodeGenerator,
	logger *slog.Logger,
) RequestOTPCommandHandler {
	return RequestOTPCommandHandler{
		store:     store,
		sender:    sender,
		generator: generator,
		logger:    logger.With("component", "auth"),
	}
}

// Handle generates, stores and sends the code.
func (h RequestOTPCommandHandler) Handle(ctx context.Context, cmd RequestOTPCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	code, err := h.generator()
	if err != nil {
		return err
	}

	if err = h.store.SaveCode(ctx, cmd.Phone(), code, OTPTTL); err != nil {
		return err
	}

	if err = h.sender.Send(ctx, cmd.Phone(), code); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "otp issued", "phone", cmd.Phone())
	return nil
}
