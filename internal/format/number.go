package format

import (
	"math/big"
	"strings"
)

// FormatNumberString inserts thousands separators into a decimal string.
// A leading minus sign is preserved.
//
// Parameters:
//   - s: The decimal representation of an integer.
//
// Returns:
//   - string: The grouped representation (e.g., "1234567" -> "1,234,567").
func FormatNumberString(s string) string {
	if s == "" {
		return ""
	}
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.Grow(len(sign) + n + (n-1)/3)
	b.WriteString(sign)
	head := n % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// OrdinalSuffix returns the English ordinal suffix for n: "st", "nd", "rd"
// or "th". Values ending in 11, 12 and 13 take "th".
func OrdinalSuffix(n *big.Int) string {
	hundred := new(big.Int).Abs(n)
	hundred.Mod(hundred, big.NewInt(100))
	lastTwo := hundred.Int64()
	if lastTwo >= 11 && lastTwo <= 13 {
		return "th"
	}
	switch lastTwo % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatOrdinal renders n followed by its ordinal suffix (e.g., "10th").
func FormatOrdinal(n *big.Int) string {
	return n.String() + OrdinalSuffix(n)
}
