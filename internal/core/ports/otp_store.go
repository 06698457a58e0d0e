package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// OTPStore keeps one-time codes and verification markers with an expiry.
type OTPStore interface {
	// SaveCode stores code for phone, replacing any previous one and its failed attempts.
	SaveCode(ctx context.Context, phone kernel.Phone, code string, ttl time.Duration) error

	// ConsumeCode deletes and returns true when code matches the stored one.
	// A mismatch leaves the stored code in place until the store's limit of
	// wrong guesses is reached, after which the code is discarded.
	ConsumeCode(ctx context.Context, phone kernel.Phone, code string) (bool, error)

	// MarkVerified records that phone passed verification for ttl.
	MarkVerified(ctx context.Context, phone kernel.Phone, ttl time.Duration) error

	// IsVerified reports whether a verification marker exists for phone.
	IsVerified(ctx context.Context, phone kernel.Phone) (bool, error)
}

// OTPSender delivers codes to customers.
type OTPSender interface {
	Send(ctx context.Context, phone kernel.Phone, code string) error
}
