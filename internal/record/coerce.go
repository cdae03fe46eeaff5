package record

import (
	"regexp"
	"strconv"
)

var (
	nonDigit   = regexp.MustCompile(`\D`)
	nonDecimal = regexp.MustCompile(`[^\d.]`)
)

// CleanInt coerces raw cell text to an integer by stripping every
// non-digit rune before parsing. "1,234" becomes 1234. Empty or
// unparseable input coerces to 0.
func CleanInt(s string) int {
	digits := nonDigit.ReplaceAllString(s, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// CleanFloat coerces raw cell text to a float by stripping everything but
// digits and decimal points before parsing. "$45.6M" becomes 45.6. Empty
// or unparseable input coerces to 0.
func CleanFloat(s string) float64 {
	stripped := nonDecimal.ReplaceAllString(s, "")
	if stripped == "" {
		return 0
	}
	f, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0
	}
	return f
}
