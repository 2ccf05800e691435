package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/adityamangal1998/go_tube/internal/engine"
)

// VideoRef is a lightweight pointer to a video discovered on a channel
// page, before the per-video detail fetch.
type VideoRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Channel holds what a channel page yields directly.
type Channel struct {
	Name            string     `json:"channel_name"`
	SubscriberCount int64      `json:"subscriber_count"`
	Videos          []VideoRef `json:"videos"`
	URL             string     `json:"url"`
}

var (
	channelNameSelectors = []string{
		`meta[property="og:title"]`,
		`.channel-header-profile-image-container + .branded-page-header-title-link`,
		`.ytd-channel-name a`,
		`title`,
	}

	subscriberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?[KMB]?)\s*subscribers?`),
		regexp.MustCompile(`(?i)"subscriberCountText".*?"(\d+(?:\.\d+)?[KMB]?)"`),
	}

	watchHrefRe = regexp.MustCompile(`/watch\?v=`)
)

// maxDiscoveredVideos caps how many video links are harvested from one
// channel page.
const maxDiscoveredVideos = 20

// ParseChannelPage extracts channel name, subscriber count and recent
// video links from channel-page HTML. The name chain skips matches that
// still contain "YouTube" (bare site titles, not the channel).
func ParseChannelPage(channelURL string, body []byte) (Channel, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return Channel{}, fmt.Errorf("parse channel page: %w", err)
	}

	ch := Channel{
		Name: "Unknown Channel",
		URL:  channelURL,
	}

	for _, sel := range channelNameSelectors {
		text := selectorText(doc, sel)
		if text != "" && !strings.Contains(text, "YouTube") {
			ch.Name = text
			break
		}
	}

	html := string(body)
	for _, re := range subscriberPatterns {
		if m := re.FindStringSubmatch(html); m != nil {
			ch.SubscriberCount = engine.ParseMagnitude(m[1])
			break
		}
	}

	ch.Videos = harvestVideoLinks(doc)
	return ch, nil
}

// harvestVideoLinks collects up to maxDiscoveredVideos watch links in
// page order, deduplicated by video ID. Titles under 6 characters are
// noise (icons, badges) and get skipped.
func harvestVideoLinks(doc *goquery.Document) []VideoRef {
	var refs []VideoRef
	seen := make(map[string]struct{})

	doc.Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok || !watchHrefRe.MatchString(href) || !strings.HasPrefix(href, "/watch") {
			return true
		}

		videoURL := "https://www.youtube.com" + href
		id := engine.ExtractVideoID(videoURL)
		if id == "" {
			return true
		}
		if _, dup := seen[id]; dup {
			return true
		}

		title, _ := s.Attr("title")
		if title == "" {
			title = strings.TrimSpace(s.Text())
		}
		if len(title) <= 5 {
			return true
		}

		seen[id] = struct{}{}
		refs = append(refs, VideoRef{ID: id, Title: title, URL: videoURL})
		return len(refs) < maxDiscoveredVideos
	})

	return refs
}

// FetchChannel downloads and parses a channel page.
func FetchChannel(ctx context.Context, channelURL string) (Channel, error) {
	engine.IncrChannelScrapes()

	body, err := engine.FetchPage(ctx, channelURL)
	if err != nil {
		return Channel{}, err
	}
	return ParseChannelPage(channelURL, body)
}

// crawl limits: workers bound concurrency, the limiter spaces page
// fetches so a channel crawl does not hammer the site.
const crawlWorkers = 4

var crawlLimiter = rate.NewLimiter(rate.Limit(2), crawlWorkers)

// CrawlChannel fetches per-video details for up to maxVideos channel
// videos. Results preserve the channel-page discovery order. A video
// whose detail fetch fails degrades to a stub record built from its
// link, so one bad page never sinks the crawl. includeShorts=false
// drops records whose parsed duration marks them short-form.
func CrawlChannel(ctx context.Context, ch Channel, maxVideos int, includeShorts bool) []engine.Record {
	refs := ch.Videos
	if maxVideos > 0 && len(refs) > maxVideos {
		refs = refs[:maxVideos]
	}
	if len(refs) == 0 {
		return nil
	}

	records := make([]engine.Record, len(refs))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < crawlWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				ref := refs[i]
				if err := crawlLimiter.Wait(ctx); err != nil {
					records[i] = stubRecord(ref, ch.Name)
					continue
				}
				rec, err := FetchVideo(ctx, ref.URL)
				if err != nil {
					slog.Debug("channel crawl: video fetch failed",
						slog.String("url", ref.URL), slog.Any("error", err))
					records[i] = stubRecord(ref, ch.Name)
					continue
				}
				if rec.Channel == "" {
					rec.Channel = ch.Name
				}
				records[i] = rec
			}
		}()
	}

dispatch:
	for i := range refs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	for i := range records {
		if records[i].URL == "" {
			records[i] = stubRecord(refs[i], ch.Name)
		}
	}

	if !includeShorts {
		kept := records[:0]
		for _, rec := range records {
			if rec.Duration != "" && engine.IsShortForm(rec.Duration) {
				continue
			}
			kept = append(kept, rec)
		}
		records = kept
	}
	return records
}

// stubRecord builds the minimal record for a video whose page could not
// be fetched: the discovered title and URL, everything else defaulted.
func stubRecord(ref VideoRef, channel string) engine.Record {
	return engine.Record{
		Kind:    engine.KindVideo,
		ID:      ref.ID,
		Title:   ref.Title,
		URL:     ref.URL,
		Channel: channel,
	}
}
