package engine

import "testing"

func TestParseMagnitude(t *testing.T) {
	tests := []struct {
		text string
		want int64
	}{
		{"0", 0},
		{"123", 123},
		{"1.2K", 1200},
		{"1.2k", 1200},
		{" 987K ", 987000},
		{"1.5M", 1500000},
		{"2B", 2000000000},
		{"1,234,567", 1234567},
		{"1.23M", 1230000},
		{"1.999K", 1999},
		{"", 0},
		{"abc", 0},
		{"12xyz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ParseMagnitude(tt.text); got != tt.want {
				t.Errorf("ParseMagnitude(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1K"},
		{1200, "1.2K"},
		{987000, "987K"},
		{1500000, "1.5M"},
		{2000000000, "2B"},
		{-5, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatCount(tt.n); got != tt.want {
				t.Errorf("FormatCount(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestMagnitudeRoundTrip(t *testing.T) {
	// Compact rendering of a parsed compact count parses back to itself.
	for _, s := range []string{"1.2K", "987K", "1.5M", "2B"} {
		n := ParseMagnitude(s)
		if got := ParseMagnitude(FormatCount(n)); got != n {
			t.Errorf("round trip %q: %d -> %q -> %d", s, n, FormatCount(n), got)
		}
	}
}

func TestFormatCommas(t *testing.T) {
	if got := FormatCommas(1234567); got != "1,234,567" {
		t.Errorf("FormatCommas(1234567) = %q", got)
	}
}
