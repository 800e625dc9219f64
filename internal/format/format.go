package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Count formats an integer with comma thousands separators.
// Examples: "950", "9,000", "1,234,567"
func Count(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Price formats a per-million-token price for display.
// Examples: "$0.13/M tokens", "free"
func Price(perMillion float64) string {
	if perMillion <= 0 {
		return "free"
	}
	return fmt.Sprintf("$%.2f/M tokens", perMillion)
}

// Dimension formats a vector dimension for display.
// Example: "768d"
func Dimension(d int) string {
	return fmt.Sprintf("%dd", d)
}
