// Package scrape extracts structured records from YouTube and generic
// web pages. Extraction is lenient: every field has an ordered list of
// strategies, the first non-empty match wins, and a page where nothing
// matches still yields a record with documented defaults.
package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metaContent returns the content attribute of the first element
// matching sel, trimmed. Empty when absent.
func metaContent(doc *goquery.Document, sel string) string {
	content, _ := doc.Find(sel).First().Attr("content")
	return strings.TrimSpace(content)
}

// elementText returns the text of the first element matching sel, trimmed.
func elementText(doc *goquery.Document, sel string) string {
	return strings.TrimSpace(doc.Find(sel).First().Text())
}

// selectorText tries a selector as a meta tag first (content attribute),
// then as element text. Mirrors the "content or text" duality of meta vs
// regular elements in one fallback chain.
func selectorText(doc *goquery.Document, sel string) string {
	if strings.HasPrefix(sel, "meta") {
		return metaContent(doc, sel)
	}
	return elementText(doc, sel)
}

// firstSelector walks selectors in order and returns the first non-empty
// extraction, or fallback when none match.
func firstSelector(doc *goquery.Document, selectors []string, fallback string) string {
	for _, sel := range selectors {
		if v := selectorText(doc, sel); v != "" {
			return v
		}
	}
	return fallback
}

// scanNumber walks regex patterns in order against raw HTML and returns
// the first capture group parsed as an integer. Thousands separators are
// stripped; an unparseable capture moves on to the next pattern.
func scanNumber(html string, patterns []*regexp.Regexp) int64 {
	for _, re := range patterns {
		m := re.FindStringSubmatch(html)
		if m == nil {
			continue
		}
		if n := parseGroupedInt(m[1]); n >= 0 {
			return n
		}
	}
	return 0
}

// parseGroupedInt parses "1,234,567" into 1234567. Returns -1 on failure
// so scanNumber can distinguish "matched zero" from "no parse".
func parseGroupedInt(s string) int64 {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return -1
	}
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int64(r-'0')
	}
	return n
}

// splitList splits a comma-separated meta value into trimmed non-empty items.
func splitList(content string) []string {
	if content == "" {
		return nil
	}
	parts := strings.Split(content, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
