package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits kept for amounts (paise / cents).
const moneyScale = 2

// ErrMoneyIsNotConstructed is returned when a zero-value Money is validated.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromDecimal")

// Money is a non-negative monetary amount rounded to two decimal places.
// It wraps github.com/shopspring/decimal so that order totals are exact sums
// of line prices and never accumulate floating point drift.
//
// Example:
//
//	price, _ := kernel.NewMoney(180)
//	total := price.Mul(2) // 360.00
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates Money from a float amount such as a JSON number.
// Negative amounts are rejected.
func NewMoney(amount float64) (Money, error) {
	return MoneyFromDecimal(decimal.NewFromFloat(amount))
}

// MoneyFromDecimal creates Money from a decimal, rounding to two places.
// Negative amounts are rejected.
func MoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount.Round(moneyScale),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney returns a constructed zero amount, the identity for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate reports whether m was built by a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float for JSON responses.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Mul returns m multiplied by a non-negative quantity.
func (m Money) Mul(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty))), guard: guard.NewConstructorGuard()}
}

// IsEqual compares amounts, ignoring representation differences such as 400 vs 400.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount with exactly two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
