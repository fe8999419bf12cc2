package domain

import (
	"github.com/shopspring/decimal"
)

// Money is an immutable, non-negative monetary amount.
// The zero value is zero money.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Returns ErrNegativeMoney if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeMoney
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString creates a Money from a decimal string (e.g. "100.50").
func NewMoneyFromString(value string) (Money, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(amount)
}

// ZeroMoney returns a Money of amount zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns a new Money holding the sum of m and other.
// Adding two non-negative amounts cannot fail.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Subtract returns a new Money holding m minus other.
// Returns ErrNegativeMoney if the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, ErrNegativeMoney
	}
	return Money{amount: result}, nil
}

// Cmp compares m and other: -1 if m < other, 0 if equal, 1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsPositive reports whether m is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether m is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal reports whether m and other hold the same amount.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
