// Package format renders navigation values with a configurable number of
// fraction digits.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dpup/navcore/internal/lib/units"
)

// MaximumRenderedFractionDigits bounds the fraction digits of String.
const MaximumRenderedFractionDigits = 20

// Double rounds value to the fraction digits of q when reduction is enabled.
// A nil value stays nil.
func Double(cfg Config, q Quantity, value *float64) *float64 {
	if value == nil {
		return nil
	}
	result := reduce(cfg, q, *value)
	return &result
}

// Decimal returns the reduced value as an exact decimal. Nil and non-finite
// values yield nil.
func Decimal(cfg Config, q Quantity, value *float64) *decimal.Decimal {
	if value == nil || !isFinite(*value) {
		return nil
	}
	result := decimal.NewFromFloat(reduce(cfg, q, *value))
	return &result
}

// String renders the reduced value without grouping and with at least one
// fraction digit. A nil value renders as "0.0".
func String(cfg Config, q Quantity, value *float64) string {
	if value == nil {
		return render(nil)
	}
	result := reduce(cfg, q, *value)
	return render(&result)
}

// Exact renders value with exactly digits fraction digits, padding with
// zeros or truncating. No reduction is applied.
func Exact(value *float64, digits int) string {
	rendered := render(value)
	dot := strings.Index(rendered, ".")
	if dot < 0 {
		// NaN and infinities
		return rendered
	}
	if digits <= 0 {
		return rendered[:dot]
	}
	fraction := rendered[dot+1:]
	if len(fraction) >= digits {
		return rendered[:dot+1+digits]
	}
	return rendered + strings.Repeat("0", digits-len(fraction))
}

func reduce(cfg Config, q Quantity, value float64) float64 {
	if !cfg.ReduceDecimalPlacesToReasonablePrecision {
		return value
	}
	return units.RoundFraction(value, cfg.MaximumFractionDigits(q))
}

func render(value *float64) string {
	if value == nil {
		return "0.0"
	}
	if !isFinite(*value) {
		return strconv.FormatFloat(*value, 'f', -1, 64)
	}
	rendered := decimal.NewFromFloat(*value).RoundBank(MaximumRenderedFractionDigits).String()
	if !strings.Contains(rendered, ".") {
		rendered += ".0"
	}
	return rendered
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
