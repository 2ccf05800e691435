// Package analyze derives SEO heuristics from extracted records: field
// analyses, an additive optimization score, suggestion generation, and
// batch scoring. Everything here is a pure function of its inputs.
package analyze

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TitleAnalysis summarizes a title's surface features.
type TitleAnalysis struct {
	Length         int                `json:"length"`
	WordCount      int                `json:"word_count"`
	HasDigit       bool               `json:"has_numbers"`
	HasUppercase   bool               `json:"has_caps"`
	HasQuestion    bool               `json:"has_question"`
	HasExclamation bool               `json:"has_exclamation"`
	KeywordDensity map[string]float64 `json:"keyword_density,omitempty"`
}

// DescriptionAnalysis summarizes a description's surface features.
type DescriptionAnalysis struct {
	Length       int  `json:"length"`
	WordCount    int  `json:"word_count"`
	HasLink      bool `json:"has_links"`
	HasTimestamp bool `json:"has_timestamps"`
	HasHashtag   bool `json:"has_hashtags"`
	LineCount    int  `json:"line_count"`
}

// TagsAnalysis summarizes a tag list.
type TagsAnalysis struct {
	Count       int     `json:"count"`
	TotalChars  int     `json:"total_characters"`
	AvgLength   float64 `json:"avg_length"`
	UniqueWords int     `json:"unique_words"`
}

var (
	digitRe     = regexp.MustCompile(`\d`)
	upperRe     = regexp.MustCompile(`[A-Z]`)
	linkRe      = regexp.MustCompile(`https?://`)
	timestampRe = regexp.MustCompile(`\d{1,2}:\d{2}`)
	hashtagRe   = regexp.MustCompile(`#\w+`)
	wordRe      = regexp.MustCompile(`\b\w+\b`)
)

// AnalyzeTitle derives a TitleAnalysis. Lengths are character counts,
// not bytes, so non-Latin titles measure correctly.
func AnalyzeTitle(title string) TitleAnalysis {
	return TitleAnalysis{
		Length:         utf8.RuneCountInString(title),
		WordCount:      len(strings.Fields(title)),
		HasDigit:       digitRe.MatchString(title),
		HasUppercase:   upperRe.MatchString(title),
		HasQuestion:    strings.Contains(title, "?"),
		HasExclamation: strings.Contains(title, "!"),
		KeywordDensity: KeywordDensity(title),
	}
}

// AnalyzeDescription derives a DescriptionAnalysis. Line count is the
// number of newline-delimited segments, never less than 1.
func AnalyzeDescription(description string) DescriptionAnalysis {
	return DescriptionAnalysis{
		Length:       utf8.RuneCountInString(description),
		WordCount:    len(strings.Fields(description)),
		HasLink:      linkRe.MatchString(description),
		HasTimestamp: timestampRe.MatchString(description),
		HasHashtag:   hashtagRe.MatchString(description),
		LineCount:    strings.Count(description, "\n") + 1,
	}
}

// AnalyzeTags derives a TagsAnalysis. Average length is 0 when there
// are no tags.
func AnalyzeTags(tags []string) TagsAnalysis {
	total := 0
	for _, tag := range tags {
		total += utf8.RuneCountInString(tag)
	}

	avg := 0.0
	if len(tags) > 0 {
		avg = float64(total) / float64(len(tags))
	}

	unique := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(strings.Join(tags, " "))) {
		unique[word] = struct{}{}
	}

	return TagsAnalysis{
		Count:       len(tags),
		TotalChars:  total,
		AvgLength:   avg,
		UniqueWords: len(unique),
	}
}

// KeywordDensity maps each case-folded word longer than 3 characters to
// 100 × occurrences / total-word-count. Short words still count toward
// the total but get no entry of their own.
func KeywordDensity(text string) map[string]float64 {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, w := range words {
		if len(w) > 3 {
			counts[w]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	total := float64(len(words))
	density := make(map[string]float64, len(counts))
	for w, c := range counts {
		density[w] = float64(c) / total * 100
	}
	return density
}

// EngagementRate computes (likes+comments)/max(views,1) × 100.
func EngagementRate(views, likes, comments int64) float64 {
	denom := views
	if denom < 1 {
		denom = 1
	}
	return float64(likes+comments) / float64(denom) * 100
}

// EngagementCategory buckets an engagement rate for display.
func EngagementCategory(rate float64) string {
	switch {
	case rate >= 10:
		return "Excellent"
	case rate >= 5:
		return "Good"
	case rate >= 2:
		return "Average"
	case rate >= 1:
		return "Below Average"
	default:
		return "Poor"
	}
}

// ScoreCategory buckets an optimization score for display.
func ScoreCategory(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}
