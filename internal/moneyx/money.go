// Package moneyx represents monetary amounts as integer cents so cart totals
// stay exact for two-decimal inputs.
package moneyx

import (
	"fmt"
	"math"
)

// Cents is a monetary amount in USD cents.
type Cents int64

// FromDollars converts a decimal dollar amount (as carried by remote
// documents) to cents, rounding half away from zero. This is the single
// point where floating-point prices enter the system.
func FromDollars(d float64) Cents {
	return Cents(math.Round(d * 100))
}

// Dollars returns the amount as a float, for serialization back to the
// remote document store only.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// Mul multiplies the amount by a quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

// String formats the amount as "$12.34". Negative amounts render as "-$0.50".
func (c Cents) String() string {
	sign := ""
	v := c
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}
