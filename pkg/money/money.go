// Package money holds the fixed-point helpers used for every ledger amount.
// Amounts are shopspring decimals rounded to cents once, at input.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const Places = 2

// Max matches the NUMERIC(12,2) columns.
var Max = decimal.RequireFromString("9999999999.99")

// Exponents outside this window are rejected before rounding, which would
// otherwise expand something like 1e9999999 into a ten million digit integer.
const (
	minExponent = -32
	maxExponent = 12
)

var ErrInvalidAmount = errors.New("invalid amount")

// Round rounds half away from zero to cents.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if exp := d.Exponent(); exp < minExponent || exp > maxExponent {
		return decimal.Zero, ErrInvalidAmount
	}
	return Round(d), nil
}

// String renders the wire form, always with two fractional digits.
func String(d decimal.Decimal) string {
	return d.StringFixed(Places)
}

// Format renders an amount for chat text, e.g. $1,234.50.
func Format(d decimal.Decimal) string {
	s := d.Abs().StringFixed(Places)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
