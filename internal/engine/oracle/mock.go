package oracle

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/adityamangal1998/go_tube/internal/engine"
)

// Mock is the deterministic oracle used when no LLM is configured. Its
// output depends only on the record, so tests and offline runs are
// reproducible.
type Mock struct{}

// NewMock builds the deterministic oracle.
func NewMock() *Mock {
	return &Mock{}
}

var keywordWordRe = regexp.MustCompile(`\b\w+\b`)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"how": {}, "what": {}, "when": {}, "where": {}, "why": {},
}

// ExtractKeywords pulls up to 10 case-folded keywords (length > 3, not
// stopwords) from text, deduplicated in first-seen order.
func ExtractKeywords(text string) []string {
	words := keywordWordRe.FindAllString(strings.ToLower(text), -1)
	seen := make(map[string]struct{})
	var keywords []string
	for _, w := range words {
		if len(w) <= 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
		if len(keywords) == 10 {
			break
		}
	}
	return keywords
}

// Suggest builds the full suggestion set from templates.
func (o *Mock) Suggest(_ context.Context, rec engine.Record) (*engine.SuggestionSet, error) {
	return &engine.SuggestionSet{
		ImprovedTitle:       mockTitle(rec.Title),
		ImprovedDescription: mockDescription(rec.Title, rec.Description),
		SuggestedTags:       mockTags(rec.Title, rec.Tags),
		ContentIdeas:        mockContentIdeas(rec.Title),
		SEOAnalysis: &engine.SEOAnalysis{
			TitleScore:       7,
			DescriptionScore: 6,
			TagsScore:        5,
			MainKeywords:     ExtractKeywords(rec.Title),
			MissingKeywords:  []string{"tutorial", "guide", "tips", "secrets"},
		},
	}, nil
}

func mockTitle(current string) string {
	if len(current) < 40 {
		return fmt.Sprintf("Ultimate %s - 7 Tips You Need!", current)
	}
	return fmt.Sprintf("10 Secret %s... Revealed!", engine.TruncateRunes(current, 30, ""))
}

func mockDescription(title, current string) string {
	hook := "Get ready to transform your understanding!"
	keywords := ExtractKeywords(title)
	keywordText := fmt.Sprintf("Learn about %s and more!", strings.Join(firstN(keywords, 3), ", "))

	cta := "\n\nDon't forget to SUBSCRIBE for more content!\n" +
		"LIKE this video if it helped you!\n" +
		"COMMENT below with your thoughts!\n\n" +
		"#trending #viral #tutorial"

	if len(current) > 100 {
		return fmt.Sprintf("%s\n\n%s...\n\n%s%s", hook, engine.TruncateRunes(current, 200, ""), keywordText, cta)
	}
	return fmt.Sprintf("%s\n\n%s\n\nThis video covers everything you need to know!%s", hook, keywordText, cta)
}

// mockTags merges title keywords, evergreen discovery tags and the first
// few current tags, deduplicated in that order, capped at 12.
func mockTags(title string, current []string) []string {
	evergreen := []string{"viral", "trending", "popular", "new", "latest", "best", "top", "guide", "tutorial", "tips"}

	merged := append([]string{}, ExtractKeywords(title)...)
	merged = append(merged, evergreen...)
	merged = append(merged, firstN(current, 5)...)

	seen := make(map[string]struct{}, len(merged))
	var tags []string
	for _, tag := range merged {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
		if len(tags) == 12 {
			break
		}
	}
	return tags
}

func mockContentIdeas(title string) []string {
	topic := "content"
	if kws := ExtractKeywords(title); len(kws) > 0 {
		topic = kws[0]
	}
	return []string{
		fmt.Sprintf("Top 10 %s mistakes to avoid", topic),
		fmt.Sprintf("Beginner's guide to %s", topic),
		fmt.Sprintf("Advanced %s techniques revealed", topic),
		fmt.Sprintf("%s vs alternatives comparison", topic),
		fmt.Sprintf("Future of %s in 2025", topic),
	}
}

// DeepAnalysis renders the canned markdown review.
func (o *Mock) DeepAnalysis(_ context.Context, rec engine.Record, _ float64) (string, error) {
	title := rec.Title
	if title == "" {
		title = "your video"
	}
	topic := "this topic"
	if kws := ExtractKeywords(title); len(kws) > 0 {
		topic = kws[0]
	}

	return fmt.Sprintf(`### Deep Analysis & Suggestions for "%s"

**Thumbnail Analysis**
1. **Use High-Contrast Colors**: Make your thumbnail pop with bright, contrasting colors.
2. **Include a Human Face**: Thumbnails with expressive faces get more clicks.
3. **Add Text Overlay**: Use a short, bold title on the thumbnail itself.

**Content Structure**
- **Hook (0-15s)**: Start with a question or a surprising statement.
- **Intro (15-30s)**: Briefly explain what the video is about.
- **Main Content (30s-end)**: Deliver your main points clearly.
- **CTA**: Ask for likes and subscribes around the midpoint.
- **Outro**: Tease your next video.

**Audience Persona**
- **Who they are**: Likely beginners interested in %s.
- **What they want**: Quick, easy-to-understand solutions.
- **How to tailor**: Use simple language, avoid jargon.

**Engagement Hooks**
1. Ask a question and tell viewers to answer in the comments.
2. Run a poll using the platform's poll card feature.
3. Create a "video challenge" related to your content.

**Monetization Potential**
1. **Affiliate Marketing**: Link to products you used in the video.
2. **Create a Course**: Sell a more in-depth course on the topic.
3. **Offer Consulting**: Provide one-on-one help for a fee.
`, title, topic), nil
}
