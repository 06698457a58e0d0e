package kernel

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

const (
	phoneMinDigits = 10
	phoneMaxDigits = 15
)

// Phone is a customer phone number normalized to an optional leading '+' followed by digits.
// Spaces and dashes are stripped, so "+91 98765-43210" and "+919876543210" compare equal.
type Phone string

// NewPhone normalizes raw and checks that it carries 10 to 15 digits.
func NewPhone(raw string) (Phone, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", errs.NewValueIsRequiredError("phone")
	}

	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-':
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			return "", errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("unexpected character %q", r))
		}
	}

	normalized := b.String()
	digits := len(strings.TrimPrefix(normalized, "+"))
	if digits < phoneMinDigits || digits > phoneMaxDigits {
		return "", errs.NewValueIsOutOfRangeError("phone digits", digits, phoneMinDigits, phoneMaxDigits)
	}

	return Phone(normalized), nil
}

// String returns the normalized phone number.
func (p Phone) String() string {
	return string(p)
}
