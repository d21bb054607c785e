// Package display formats domain values for terminal output.
package display

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
)

// Price renders a price with the currency symbol in front: "₪40", "₪1,250.5".
// Whole amounts print without decimals and fractions show at most two digits.
func Price(value float64, symbol string) string {
	return symbol + humanize.CommafWithDigits(value, 2)
}

// Minutes renders a list-row duration ("30 min").
func Minutes(minutes int) string {
	return humanize.Comma(int64(minutes)) + " min"
}

// Duration renders a picker label via domain.DurationLabel.
func Duration(minutes int) string {
	return domain.DurationLabel(minutes)
}

// Bytes renders a size for download summaries ("1.2 kB").
func Bytes(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// Truncate shortens s to width runes, ending in an ellipsis when cut.
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return strings.TrimSpace(string(r[:width-3])) + "..."
}
