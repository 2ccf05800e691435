package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrFormat reports a malformed duration or count string. Callers that
// want a total function wrap the parse and fall back to 0.
var ErrFormat = errors.New("malformed format")

var (
	verboseHoursRe   = regexp.MustCompile(`(\d+)h`)
	verboseMinutesRe = regexp.MustCompile(`(\d+)m`)
	verboseSecondsRe = regexp.MustCompile(`(\d+)s`)
	iso8601Re        = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)
)

// FormatClock renders seconds as "M:SS", or "H:MM:SS" from one hour up.
// Seconds are always zero-padded; minutes only in the hour form.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// FormatVerbose renders seconds as a human-readable "Xh Ym Zs" string,
// omitting zero-valued units: 0 → "0s", 90 → "1m 30s", 3600 → "1h".
func FormatVerbose(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		minutes := seconds / 60
		secs := seconds % 60
		if secs > 0 {
			return fmt.Sprintf("%dm %ds", minutes, secs)
		}
		return fmt.Sprintf("%dm", minutes)
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	switch {
	case secs > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dh", hours)
	}
}

// ParseClock parses "MM:SS" or "HH:MM:SS" into total seconds.
// Non-numeric parts or a part count other than 2 or 3 yield ErrFormat.
func ParseClock(text string) (int, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: clock %q has %d parts", ErrFormat, text, len(parts))
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, fmt.Errorf("%w: clock %q part %q is not a number", ErrFormat, text, p)
		}
		nums[i] = n
	}

	if len(nums) == 2 {
		return nums[0]*60 + nums[1], nil
	}
	return nums[0]*3600 + nums[1]*60 + nums[2], nil
}

// ParseVerbose parses "1h 30m 45s"-style strings. Units may appear in any
// order and any subset; missing units contribute 0. A string with no unit
// at all parses to 0, not an error.
func ParseVerbose(text string) int {
	total := 0
	if m := verboseHoursRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += n * 3600
	}
	if m := verboseMinutesRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += n * 60
	}
	if m := verboseSecondsRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += n
	}
	return total
}

// ParseDurationText parses either clock ("1:30") or verbose ("1h 30m")
// duration strings; empty or unrecognized input yields 0.
func ParseDurationText(text string) int {
	if text == "" {
		return 0
	}
	if strings.Contains(text, ":") {
		if secs, err := ParseClock(text); err == nil {
			return secs
		}
		return 0
	}
	return ParseVerbose(text)
}

// IsShortForm reports whether a clock duration is a short-form video:
// total length of 60 seconds or less AND a zero hour component. The hour
// field is checked explicitly so "1:00:00" is never short.
func IsShortForm(clock string) bool {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	switch len(parts) {
	case 2:
		m, err1 := strconv.Atoi(parts[0])
		s, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return false
		}
		return m*60+s <= 60
	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		s, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return false
		}
		return h == 0 && h*3600+m*60+s <= 60
	}
	return false
}

// ParseISO8601 parses a YouTube Data API duration like "PT1H2M30S" into
// seconds. Malformed input yields 0.
func ParseISO8601(d string) int {
	m := iso8601Re.FindStringSubmatch(strings.TrimSpace(d))
	if m == nil {
		return 0
	}
	total := 0
	if m[1] != "" {
		n, _ := strconv.Atoi(m[1])
		total += n * 3600
	}
	if m[2] != "" {
		n, _ := strconv.Atoi(m[2])
		total += n * 60
	}
	if m[3] != "" {
		n, _ := strconv.Atoi(m[3])
		total += n
	}
	return total
}
