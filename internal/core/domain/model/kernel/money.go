package kernel

import (
	"math"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNegative indicates a monetary amount below zero.
// Order totals, prices, and fees are always non-negative.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// moneyPlaces is the monetary scale: all amounts are kept at 2 decimal places.
const moneyPlaces = 2

// Money is a value object representing a non-negative monetary amount.
// It wraps shopspring/decimal to avoid binary floating point drift and
// fixes the scale at 2 decimal places, rounding half away from zero.
//
// The zero value of Money is a valid amount of 0.00, so Money can be used
// directly as a struct field without explicit initialization.
//
// Money is immutable: all arithmetic methods return a new Money value.
//
// Example usage:
//
//	price := kernel.NewMoneyFromFloat(100)
//	discounted := price.ApplyDiscountPercent(10) // 90.00
//	lineTotal := discounted.MulInt(2)            // 180.00
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromFloat creates a Money value from a float64, rounded to 2 decimal
// places. NaN, infinities, and negative inputs are coerced to zero so that a
// partially resolved price can never poison a computed total.
func NewMoneyFromFloat(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return Money{}
	}
	return Money{amount: decimal.NewFromFloat(value).Round(moneyPlaces)}
}

// NewMoneyFromDecimal creates a Money value from a decimal, rounded to 2 decimal places.
// Negative amounts are rejected.
func NewMoneyFromDecimal(value decimal.Decimal) (Money, error) {
	if value.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: value.Round(moneyPlaces)}, nil
}

// MoneyFromString parses a Money value from its decimal string representation,
// e.g. "203.00". Negative and malformed inputs are rejected.
func MoneyFromString(s string) (Money, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoneyFromDecimal(value)
}

// ZeroMoney returns the zero amount (0.00).
func ZeroMoney() Money {
	return Money{}
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by a non-negative integer factor.
// A negative factor is treated as zero.
func (m Money) MulInt(factor int) Money {
	if factor < 0 {
		return Money{}
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor))).Round(moneyPlaces)}
}

// ApplyDiscountPercent returns the amount reduced by the given percentage,
// rounded to 2 decimal places. Percentages outside [0, 100] are clamped.
func (m Money) ApplyDiscountPercent(percent float64) Money {
	if math.IsNaN(percent) || percent <= 0 {
		return m
	}
	if percent >= 100 {
		return Money{}
	}
	multiplier := decimal.NewFromFloat(1).Sub(decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100)))
	return Money{amount: m.amount.Mul(multiplier).Round(moneyPlaces)}
}

// Percent returns the given percentage of the amount, rounded to 2 decimal places.
// Used for flat-rate charges such as tax.
func (m Money) Percent(percent float64) Money {
	if math.IsNaN(percent) || percent <= 0 {
		return Money{}
	}
	rate := decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100))
	return Money{amount: m.amount.Mul(rate).Round(moneyPlaces)}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64. Intended for presentation only;
// all domain arithmetic stays on the decimal representation.
func (m Money) Float64() float64 {
	f, _ := m.amount.Round(moneyPlaces).Float64()
	return f
}

// String returns the fixed 2-decimal string representation, e.g. "203.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyPlaces)
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate checks that the amount is non-negative.
// Reconstruction from persistence goes through this check.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return ErrMoneyIsNegative
	}
	return nil
}
