package engine

import (
	"errors"
	"testing"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{90, "1:30"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
		{-10, "0:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatClock(tt.seconds); got != tt.want {
				t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatVerbose(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{90, "1m 30s"},
		{3600, "1h"},
		{3660, "1h 1m"},
		{3665, "1h 1m 5s"},
		{3605, "1h 0m 5s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatVerbose(tt.seconds); got != tt.want {
				t.Errorf("FormatVerbose(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		text    string
		want    int
		wantErr bool
	}{
		{"0:00", 0, false},
		{"1:30", 90, false},
		{"10:05", 605, false},
		{"1:00:00", 3600, false},
		{"1:01:01", 3661, false},
		{" 2:15 ", 135, false},
		{"90", 0, true},
		{"1:2:3:4", 0, true},
		{"a:30", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseClock(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q) expected error", tt.text)
				}
				if !errors.Is(err, ErrFormat) {
					t.Errorf("ParseClock(%q) error = %v, want ErrFormat", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseVerbose(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"0s", 0},
		{"45s", 45},
		{"1m 30s", 90},
		{"1h", 3600},
		{"1h 1m 5s", 3665},
		{"5m", 300},
		{"no units here", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ParseVerbose(tt.text); got != tt.want {
				t.Errorf("ParseVerbose(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestClockRoundTrip(t *testing.T) {
	for _, seconds := range []int{0, 1, 59, 60, 61, 599, 600, 3599, 3600, 3661, 7325} {
		clock := FormatClock(seconds)
		got, err := ParseClock(clock)
		if err != nil {
			t.Fatalf("ParseClock(%q) unexpected error: %v", clock, err)
		}
		if got != seconds {
			t.Errorf("round trip %d -> %q -> %d", seconds, clock, got)
		}
	}
}

func TestIsShortForm(t *testing.T) {
	tests := []struct {
		clock string
		want  bool
	}{
		{"0:45", true},
		{"0:59", true},
		{"1:00", true},
		{"1:01", false},
		{"0:00:45", true},
		{"1:00:00", false},
		{"10:00", false},
		{"garbage", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			if got := IsShortForm(tt.clock); got != tt.want {
				t.Errorf("IsShortForm(%q) = %v, want %v", tt.clock, got, tt.want)
			}
		})
	}
}

func TestParseISO8601(t *testing.T) {
	tests := []struct {
		d    string
		want int
	}{
		{"PT15S", 15},
		{"PT1M30S", 90},
		{"PT1H", 3600},
		{"PT1H2M30S", 3750},
		{"PT0S", 0},
		{"P1D", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		t.Run(tt.d, func(t *testing.T) {
			if got := ParseISO8601(tt.d); got != tt.want {
				t.Errorf("ParseISO8601(%q) = %d, want %d", tt.d, got, tt.want)
			}
		})
	}
}
