package scrape

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/adityamangal1998/go_tube/internal/engine"
)

// Ordered fallback chains for video pages. Watch pages served to
// non-browser clients often carry only the meta layer, so the og: tags
// lead and the legacy watch-page selectors trail.
var (
	videoTitleSelectors = []string{
		`meta[property="og:title"]`,
		`meta[name="title"]`,
		`title`,
		`h1.title`,
		`.watch-main-col h1`,
	}
	videoDescSelectors = []string{
		`meta[property="og:description"]`,
		`meta[name="description"]`,
		`.watch-main-col .content`,
		`#watch-description-text`,
	}

	viewPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*views?`),
		regexp.MustCompile(`(?i)viewCount.*?(\d+)`),
		regexp.MustCompile(`(?i)"viewCount":"(\d+)"`),
	}
	likePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)"likeCount":"(\d+)"`),
		regexp.MustCompile(`(?i)likeCount.*?(\d+)`),
		regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*likes?`),
	}
	commentPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)"commentCount":"(\d+)"`),
		regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*comments?`),
	}
	durationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`"lengthSeconds":"(\d+)"`),
		regexp.MustCompile(`(?i)"approxDurationMs":"(\d+)"`),
	}
	channelNamePattern = regexp.MustCompile(`"ownerChannelName":"([^"]+)"`)
	publishDatePattern = regexp.MustCompile(`"publishDate":"([^"]+)"`)
)

// ParseVideoPage extracts a video record from raw watch-page HTML.
// Missing fields take their defaults: "Unknown Title", empty description,
// zero counts, nil tags. Parsing never fails on content; only broken HTML
// readers error.
func ParseVideoPage(videoURL string, body []byte) (engine.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return engine.Record{}, fmt.Errorf("parse video page: %w", err)
	}
	html := string(body)

	rec := engine.Record{
		Kind:        engine.KindVideo,
		ID:          engine.ExtractVideoID(videoURL),
		URL:         videoURL,
		Title:       firstSelector(doc, videoTitleSelectors, "Unknown Title"),
		Description: firstSelector(doc, videoDescSelectors, ""),
		Tags:        splitList(metaContent(doc, `meta[name="keywords"]`)),
		Thumbnail:   metaContent(doc, `meta[property="og:image"]`),
	}

	rec.ViewCount = scanNumber(html, viewPatterns)
	rec.LikeCount = scanNumber(html, likePatterns)
	rec.CommentCount = scanNumber(html, commentPatterns)

	if secs := scanDuration(html); secs > 0 {
		rec.DurationSeconds = secs
		rec.Duration = engine.FormatClock(secs)
	}
	if m := channelNamePattern.FindStringSubmatch(html); m != nil {
		rec.Channel = m[1]
	}
	if m := publishDatePattern.FindStringSubmatch(html); m != nil {
		rec.PublishedAt = m[1]
	}

	return rec, nil
}

// scanDuration reads the player-config duration. lengthSeconds is already
// seconds; approxDurationMs needs dividing down.
func scanDuration(html string) int {
	if m := durationPatterns[0].FindStringSubmatch(html); m != nil {
		if n := parseGroupedInt(m[1]); n > 0 {
			return int(n)
		}
	}
	if m := durationPatterns[1].FindStringSubmatch(html); m != nil {
		if n := parseGroupedInt(m[1]); n > 0 {
			return int(n / 1000)
		}
	}
	return 0
}

// FetchVideo downloads and parses a single video page.
func FetchVideo(ctx context.Context, videoURL string) (engine.Record, error) {
	engine.IncrVideoScrapes()

	body, err := engine.FetchPage(ctx, videoURL)
	if err != nil {
		return engine.Record{}, err
	}
	return ParseVideoPage(videoURL, body)
}
