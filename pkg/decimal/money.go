package decimal

import (
	"github.com/shopspring/decimal"
)

// CurrencySymbol is the display prefix for amounts in Peruvian soles.
const CurrencySymbol = "S/"

// Money represents an amount in soles with full decimal precision.
// Rounding happens only when the amount is displayed.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the amount to cents.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Percent returns rate applied to the amount (rate 0.09 yields 9%).
func (m Money) Percent(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate)}
}

// Prorate returns amount * units / per, multiplying first so that exact
// fractions such as 1000/12*6 stay exact.
func (m Money) Prorate(units, per int64) Money {
	if per == 0 {
		return Zero()
	}
	return Money{m.Decimal.Mul(decimal.NewFromInt(units)).Div(decimal.NewFromInt(per))}
}

// Half returns 50% of the amount without introducing a division remainder.
func (m Money) Half() Money {
	return Money{m.Decimal.Mul(decimal.NewFromFloat(0.5))}
}

// Sum adds all amounts.
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b.Decimal) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with exactly two decimals.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format returns the amount prefixed with the currency symbol, e.g. "S/ 1234.50".
func (m Money) Format() string {
	return CurrencySymbol + " " + m.String()
}
