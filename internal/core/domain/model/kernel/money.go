package kernel

import (
	"fmt"

	"burger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyDisplayPlaces is the number of decimal places used when a price is rendered.
const moneyDisplayPlaces = 2

// Money is an exact decimal amount. Prices of buns, ingredients and burgers are
// Money values so that sums such as 2×12.5 + 200 are computed without float drift.
//
// The zero value is a valid amount of 0.
//
// Example:
//
//	bunPrice := kernel.MoneyFromFloat(12.5)
//	total := bunPrice.Mul(2).Add(kernel.MoneyFromFloat(200))
//	fmt.Println(total) // 225.00
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney wraps a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromFloat converts a float amount such as 12.5.
func MoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// MoneyFromInt converts a whole amount.
func MoneyFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// MoneyFromString parses a decimal amount such as "12.50".
// Returns a ValueIsInvalidError when the string is not a number.
func MoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%q is not a decimal amount", amount))
	}
	return Money{amount: d}, nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns m multiplied by a whole factor.
func (m Money) Mul(factor int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(factor))}
}

// Equal compares amounts numerically, so 225 equals 225.00.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Amount returns the underlying decimal for persistence adapters.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Float64 returns the nearest float64 representation, for JSON responses.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(moneyDisplayPlaces)
}
