package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/adityamangal1998/go_tube/internal/engine"
)

// LLM is the real oracle. Each facet is generated with its own prompt
// and is best-effort: a failed facet is logged and skipped, never fatal.
type LLM struct{}

// NewLLM builds the LLM-backed oracle. Requires engine.Init with an LLM
// client; calls fail cleanly otherwise.
func NewLLM() *LLM {
	return &LLM{}
}

const maxTagLength = 30

var (
	numberedLineRe = regexp.MustCompile(`^\d+\.?\s*`)
	dashPrefixRe   = regexp.MustCompile(`^-\s*`)
)

// Suggest generates the five suggestion facets. Returns nil (no error)
// when every facet came back empty.
func (o *LLM) Suggest(ctx context.Context, rec engine.Record) (*engine.SuggestionSet, error) {
	var set engine.SuggestionSet

	desc := engine.TruncateRunes(rec.Description, 500, "")
	tagsJoined := strings.Join(firstN(rec.Tags, 10), ", ")

	if title, err := engine.CallLLMWith(ctx, fmt.Sprintf(titlePrompt, rec.Title, rec.ViewCount, rec.LikeCount, rec.Duration), 0.7, 200); err != nil {
		slog.Warn("oracle: title facet failed", slog.Any("error", err))
	} else {
		set.ImprovedTitle = strings.Trim(title, `"`)
	}

	if improved, err := engine.CallLLMWith(ctx, fmt.Sprintf(descriptionPrompt, rec.Title, desc), 0.7, 600); err != nil {
		slog.Warn("oracle: description facet failed", slog.Any("error", err))
	} else {
		set.ImprovedDescription = improved
	}

	snippet := engine.TruncateRunes(rec.Description, 200, "")
	if raw, err := engine.CallLLMWith(ctx, fmt.Sprintf(tagsPrompt, rec.Title, tagsJoined, snippet), 0.7, 300); err != nil {
		slog.Warn("oracle: tags facet failed", slog.Any("error", err))
	} else {
		set.SuggestedTags = parseTagList(raw)
	}

	ideaSnippet := engine.TruncateRunes(rec.Description, 300, "")
	if raw, err := engine.CallLLMWith(ctx, fmt.Sprintf(ideasPrompt, rec.Title, ideaSnippet, rec.ViewCount, rec.LikeCount), 0.8, 400); err != nil {
		slog.Warn("oracle: ideas facet failed", slog.Any("error", err))
	} else {
		set.ContentIdeas = parseIdeaList(raw)
	}

	if raw, err := engine.CallLLMWith(ctx, fmt.Sprintf(seoPrompt, rec.Title, desc, tagsJoined), 0.3, 400); err != nil {
		slog.Warn("oracle: seo facet failed", slog.Any("error", err))
	} else {
		set.SEOAnalysis = parseSEOAnalysis(raw, rec.Title)
	}

	if isEmptySet(set) {
		return nil, nil
	}
	return &set, nil
}

// DeepAnalysis generates the full markdown review.
func (o *LLM) DeepAnalysis(ctx context.Context, rec engine.Record, engagementRate float64) (string, error) {
	desc := engine.TruncateRunes(rec.Description, 500, "")
	prompt := fmt.Sprintf(deepPrompt, rec.Title, desc, strings.Join(rec.Tags, ", "), rec.ViewCount, engagementRate)

	raw, err := engine.CallLLMWith(ctx, prompt, 0.7, 2000)
	if err != nil {
		return "", err
	}
	// Some models wrap the markdown in {"answer": ...} anyway.
	if strings.HasPrefix(raw, "{") {
		if answer := engine.ExtractJSONAnswer(raw); answer != "" {
			return answer, nil
		}
	}
	return raw, nil
}

// parseTagList splits a comma-separated response, dropping empties and
// anything over maxTagLength (a model gone verbose).
func parseTagList(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" && len(p) <= maxTagLength {
			tags = append(tags, p)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// parseIdeaList keeps lines that look like list items (numbered or
// dashed), strips the markers, caps at 5.
func parseIdeaList(raw string) []string {
	var ideas []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] < '0' || line[0] > '9' {
			if !strings.HasPrefix(line, "-") {
				continue
			}
		}
		idea := numberedLineRe.ReplaceAllString(line, "")
		idea = dashPrefixRe.ReplaceAllString(idea, "")
		if idea != "" {
			ideas = append(ideas, idea)
		}
		if len(ideas) == 5 {
			break
		}
	}
	return ideas
}

// parseSEOAnalysis decodes the JSON facet; on decode failure it degrades
// to fixed midline scores with keywords pulled from the title.
func parseSEOAnalysis(raw, title string) *engine.SEOAnalysis {
	var out engine.SEOAnalysis
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		return &out
	}
	return &engine.SEOAnalysis{
		TitleScore:       7,
		DescriptionScore: 6,
		TagsScore:        5,
		MainKeywords:     ExtractKeywords(title),
		MissingKeywords:  []string{"trending", "popular", "viral"},
	}
}

func isEmptySet(set engine.SuggestionSet) bool {
	return set.ImprovedTitle == "" &&
		set.ImprovedDescription == "" &&
		len(set.SuggestedTags) == 0 &&
		len(set.ContentIdeas) == 0 &&
		set.SEOAnalysis == nil
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
