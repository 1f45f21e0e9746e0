package export

import (
	"strconv"
	"strings"
)

// formatAmount renders a monetary value with thousands separators, matching
// the dashboard's toLocaleString output: integers without decimals
// ("25,000"), fractional values with two ("25,000.50").
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	whole, frac := parts[0], parts[1]
	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}
	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	if frac != "00" {
		out += "." + frac
	}
	return out
}

// titleCase capitalizes the first letter of a lowercase label.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
