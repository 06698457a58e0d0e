package order

import (
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
)

const (
	// CodePrefix starts every human-readable order code.
	CodePrefix = "AKF"

	// MaxDailySequence is the largest sequence number that fits the 4-digit code suffix.
	MaxDailySequence = 9999
)

// Code is the human-readable order identifier shown to customers,
// formatted as AKF-YYYYMMDD-NNNN where NNNN is the per-day sequence number.
type Code string

// NewCode builds the code for the seq-th order of day (UTC).
//
// Example:
//
//	code, _ := order.NewCode(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), 42)
//	fmt.Println(code) // AKF-20250309-0042
func NewCode(day time.Time, seq int) (Code, error) {
	if seq < 1 || seq > MaxDailySequence {
		return "", errs.NewValueIsOutOfRangeError("order code sequence", seq, 1, MaxDailySequence)
	}
	return Code(fmt.Sprintf("%s-%s-%04d", CodePrefix, CodeDay(day), seq)), nil
}

// CodeDay returns the YYYYMMDD part used for day in order codes.
func CodeDay(day time.Time) string {
	return day.UTC().Format("20060102")
}

// String returns the code.
func (c Code) String() string {
	return string(c)
}
