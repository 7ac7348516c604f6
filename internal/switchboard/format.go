package switchboard

import (
	"fmt"
	"strings"
)

// InchMark is appended to formatted dimensions in report keys and cells
const InchMark = `"`

// FormatDimension renders a dimension with two decimals, then drops
// trailing zeros and a dangling decimal point (24.00 -> "24", 24.50 -> "24.5").
func FormatDimension(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// DimensionKey is the formatted dimension with the inch mark, e.g. `24.5"`
func DimensionKey(v float64) string {
	return FormatDimension(v) + InchMark
}
