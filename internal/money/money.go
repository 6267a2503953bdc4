// Package money converts between decimal strings at the API boundary and the
// integer minor units (cents) used everywhere inside the core.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a decimal amount string ("45.67") into cents.
// More than two fractional digits is rejected rather than rounded.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	cents := d.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has sub-cent precision", s)
	}

	return cents.IntPart(), nil
}

// FormatAmount renders cents as a two-decimal string.
func FormatAmount(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// ParsePercent parses a percentage string ("33.33") into basis points
// (hundredths of a percent). More than two fractional digits is rejected.
func ParsePercent(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing percent %q: %w", s, err)
	}

	bp := d.Mul(decimal.NewFromInt(100))
	if !bp.IsInteger() {
		return 0, fmt.Errorf("percent %q finer than basis points", s)
	}

	return bp.IntPart(), nil
}

// FormatPercent renders basis points as a percentage string.
func FormatPercent(bp int64) string {
	return decimal.NewFromInt(bp).Div(decimal.NewFromInt(100)).StringFixed(2)
}
