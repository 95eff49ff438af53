package decimal

import (
	"math"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a display amount. It holds the exact value of the
// float64 it was built from, so rounding sees the true binary value.
// Rounding is half to even on that exact value.
type Money struct {
	decimal.Decimal
	neg     bool // sign bit of the source, kept so -0.4 renders as "-0"
	special string
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	switch {
	case math.IsNaN(value):
		return Money{special: "nan"}
	case math.IsInf(value, 1):
		return Money{special: "inf"}
	case math.IsInf(value, -1):
		return Money{special: "-inf", neg: true}
	}
	return Money{Decimal: exact(value), neg: math.Signbit(value)}
}

// exact converts v to the decimal it denotes, digit for digit.
func exact(v float64) decimal.Decimal {
	if v == 0 {
		return decimal.Zero
	}
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	// m / 2^k == m * 5^k / 10^k
	k := int64(-exp)
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, five), int32(-k))
}

// Whole renders the amount as a whole number with thousands separators.
func (m Money) Whole() string {
	if m.special != "" {
		return m.special
	}
	r := m.Decimal.RoundBank(0)
	return m.signed(r, humanize.BigComma(r.BigInt()))
}

// Format renders the whole amount followed by a unit suffix, e.g. "52,900 AED".
// An empty unit yields just the grouped number.
func (m Money) Format(unit string) string {
	if unit == "" {
		return m.Whole()
	}
	return m.Whole() + " " + unit
}

// Fixed renders the amount with the given number of decimals, no grouping.
func (m Money) Fixed(places int32) string {
	if m.special != "" {
		return m.special
	}
	r := m.Decimal.RoundBank(places)
	return m.signed(r, r.StringFixed(places))
}

// signed restores the minus sign that a negative value loses when it
// rounds to zero.
func (m Money) signed(r decimal.Decimal, s string) string {
	if m.neg && r.IsZero() {
		return "-" + s
	}
	return s
}

// Percent renders a value already expressed in percent with two decimals.
func Percent(value float64) string {
	return NewMoney(value).Fixed(2) + "%"
}
