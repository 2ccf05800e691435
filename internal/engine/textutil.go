package engine

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

const (
	UserAgentBot    = "GoTube/1.0"
	UserAgentChrome = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	hashtagRe    = regexp.MustCompile(`#\w+`)
	mentionRe    = regexp.MustCompile(`@[\w.-]+`)
	urlRe        = regexp.MustCompile(`https?://[^\s<>"']+`)

	videoIDRe   = regexp.MustCompile(`(?:v=|/shorts/|youtu\.be/|/embed/)([A-Za-z0-9_-]{11})`)
	channelIDRe = regexp.MustCompile(`/channel/(UC[A-Za-z0-9_-]{22})`)
	handleRe    = regexp.MustCompile(`/(@[\w.-]+)`)
)

// CleanText collapses runs of whitespace to single spaces and trims.
func CleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// CleanHTML strips HTML tags and trims whitespace.
func CleanHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

// TruncateAtWord shortens s to at most maxLen, breaking at a word boundary.
func TruncateAtWord(s string, maxLen int) string {
	return strutil.TruncateAtWord(s, maxLen)
}

// ValidateURL checks that raw is an absolute http(s) URL.
func ValidateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid url %q: missing host", raw)
	}
	return nil
}

// ExtractVideoID pulls the 11-character video ID out of any of the
// common YouTube URL shapes (watch, shorts, embed, youtu.be).
func ExtractVideoID(raw string) string {
	if m := videoIDRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return ""
}

// ExtractChannelID pulls a UC channel ID from a /channel/ URL.
func ExtractChannelID(raw string) string {
	if m := channelIDRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return ""
}

// ExtractHandle pulls an @handle from a channel URL, "@" included.
func ExtractHandle(raw string) string {
	if m := handleRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return ""
}

// ExtractHashtags returns the hashtags in s, first-seen order, deduped.
func ExtractHashtags(s string) []string {
	return dedupe(hashtagRe.FindAllString(s, -1))
}

// ExtractMentions returns the @mentions in s, first-seen order, deduped.
func ExtractMentions(s string) []string {
	return dedupe(mentionRe.FindAllString(s, -1))
}

// ExtractURLs returns the http(s) URLs in s, first-seen order, deduped.
func ExtractURLs(s string) []string {
	return dedupe(urlRe.FindAllString(s, -1))
}

// ReadingTime estimates minutes to read s at 200 words per minute,
// rounded to the nearest minute, never less than 1 for non-empty text.
func ReadingTime(s string) int {
	words := len(strings.Fields(s))
	if words == 0 {
		return 0
	}
	minutes := (words + 100) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
