// Package money centralizes currency rounding.
//
// Amounts are rounded to cents half away from zero on their exact decimal
// value: 0.005 becomes 0.01 and -0.005 becomes -0.01. Callers round only at
// output boundaries, never intermediate sums.
package money

import "github.com/shopspring/decimal"

// Places is the currency precision.
const Places = 2

// Round2 rounds d to cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// OrZero returns the value of a nullable amount, or zero when absent.
func OrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// Null wraps d as a present nullable amount.
func Null(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
