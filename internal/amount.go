package internal

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with exactly two decimals, rounding half away from zero
// on the shortest decimal representation of the float (75.505 -> "75.51").
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// ParseMagnitude parses a user-entered amount. It is rounded to cents so the in-memory
// value matches what ends up in the file, and the rounded value must be positive and finite.
func ParseMagnitude(s string) (float64, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	d = d.Round(2)
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: amount must be at least 0.01", ErrInvalidAmount)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, s)
	}
	return f, nil
}

// Signed returns magnitude as a deposit (positive) or payment (negative) amount
func Signed(magnitude float64, payment bool) float64 {
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if payment {
		return -magnitude
	}
	return magnitude
}
