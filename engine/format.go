package engine

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ============================================================================
// FORMATTERS - shared by every binder
// ============================================================================

// FormatThousands groups the integer part every three digits and keeps the
// fractional digits exactly as the shortest representation of v:
// 1234567.5 -> "1,234,567.5", 1000 -> "1,000", 0 -> "0".
func FormatThousands(v float64) string {
	return humanize.Commaf(v)
}

// FormatCurrency formats an amount in dollars with grouping and two decimals:
// 1250000 -> "$1,250,000.00", -12 -> "-$12.00".
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	result := "$" + message.NewPrinter(language.English).Sprintf("%.2f", amount)
	if negative {
		result = "-" + result
	}
	return result
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	return humanize.Comma(int64(n))
}

// FormatCount rounds v to a whole number and groups it: 12.4 -> "12",
// 1234567 -> "1,234,567". Values beyond the int range are formatted as-is.
func FormatCount(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return message.NewPrinter(language.English).Sprintf("%.0f", r)
}

// FormatPercent renders v followed by "%": 42 -> "42%", 8.5 -> "8.5%".
func FormatPercent(v float64) string {
	return FormatPlain(v) + "%"
}

// FormatPlain renders v with no grouping and no trailing zeros.
func FormatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
