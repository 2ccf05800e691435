package engine

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseMagnitude converts compact count strings like "1.2M", "987K" or
// "1,234,567" into an absolute integer. Suffixes K, M and B are
// case-insensitive, results truncate toward zero, and anything
// unparseable yields 0.
func ParseMagnitude(text string) int64 {
	s := strings.ToUpper(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}

	mult := int64(1)
	switch s[len(s)-1] {
	case 'K':
		mult = 1_000
		s = s[:len(s)-1]
	case 'M':
		mult = 1_000_000
		s = s[:len(s)-1]
	case 'B':
		mult = 1_000_000_000
		s = s[:len(s)-1]
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int64(f * float64(mult))
}

// FormatCount renders a count the way platforms display it: exact below
// 1000, compact "1.2K" / "3.4M" / "1.1B" above. One decimal digit,
// trailing ".0" stripped.
func FormatCount(n int64) string {
	if n < 0 {
		n = 0
	}
	switch {
	case n < 1_000:
		return strconv.FormatInt(n, 10)
	case n < 1_000_000:
		return compact(float64(n)/1_000) + "K"
	case n < 1_000_000_000:
		return compact(float64(n)/1_000_000) + "M"
	default:
		return compact(float64(n)/1_000_000_000) + "B"
	}
}

func compact(f float64) string {
	s := strconv.FormatFloat(f, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// FormatCommas renders a count with thousands separators, "1,234,567".
func FormatCommas(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Comma(n)
}
