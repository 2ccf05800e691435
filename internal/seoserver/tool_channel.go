package seoserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/adityamangal1998/go_tube/internal/engine"
	"github.com/adityamangal1998/go_tube/internal/engine/analyze"
	"github.com/adityamangal1998/go_tube/internal/engine/oracle"
	"github.com/adityamangal1998/go_tube/internal/engine/scrape"
)

// maxOracleVideos bounds per-video LLM calls in detailed channel reports.
const maxOracleVideos = 5

func registerChannelReport(server *mcp.Server, orc oracle.Oracle) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "channel_report",
		Description: "Build an SEO report for a YouTube channel: per-video optimization scores, engagement rates, improvement suggestions, and channel-level aggregates (average score, average engagement, top performer). Accepts a channel URL, a UC... channel ID, or an @handle. Pass detailed=true for AI suggestions on the weakest videos.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ChannelReportInput) (*mcp.CallToolResult, ChannelReport, error) {
		if input.Channel == "" {
			return nil, ChannelReport{}, errors.New("channel is required")
		}
		engine.IncrAnalyzeRequests()

		cacheKey := engine.CacheKey("channel_report", input.Channel,
			fmt.Sprintf("max_%d_noshorts_%t_detail_%t", input.MaxVideos, input.ExcludeShorts, input.Detailed))
		if out, ok := engine.CacheLoadJSON[ChannelReport](ctx, cacheKey); ok {
			return nil, out, nil
		}

		var report *ChannelReport
		err := engine.TrackOperation(ctx, "channel_report", func(ctx context.Context) error {
			var err error
			report, err = buildChannelReport(ctx, orc, input.Channel, input.MaxVideos, !input.ExcludeShorts, input.Detailed)
			return err
		})
		if err != nil {
			return nil, ChannelReport{}, err
		}

		engine.CacheStoreJSON(ctx, cacheKey, *report)
		return nil, *report, nil
	})
}

// buildChannelReport resolves the channel reference, collects recent
// uploads via the Data API when configured (scraping otherwise), and
// scores the batch.
func buildChannelReport(ctx context.Context, orc oracle.Oracle, ref string, maxVideos int, includeShorts, detailed bool) (*ChannelReport, error) {
	if maxVideos <= 0 {
		maxVideos = engine.Cfg.MaxVideos
	}
	if maxVideos <= 0 {
		maxVideos = 20
	}

	var report *ChannelReport
	if scrape.DataAPIConfigured() {
		var err error
		report, err = apiChannelReport(ctx, ref, maxVideos, includeShorts)
		if err != nil {
			slog.Warn("channel_report: data api failed, falling back to scrape", slog.Any("error", err))
			report = nil
		}
	}
	if report == nil {
		var err error
		report, err = scrapedChannelReport(ctx, ref, maxVideos, includeShorts)
		if err != nil {
			return nil, err
		}
	}

	if detailed {
		attachWeakestSuggestions(ctx, orc, report.Videos)
	}
	report.Summary = analyze.Summarize(report.Videos)
	report.SubscriberText = engine.FormatCount(report.SubscriberCount)
	report.TotalViewsText = engine.FormatCommas(report.Summary.TotalViews)
	return report, nil
}

func apiChannelReport(ctx context.Context, ref string, maxVideos int, includeShorts bool) (*ChannelReport, error) {
	channelID, err := resolveChannelID(ctx, ref)
	if err != nil {
		return nil, err
	}

	stats, err := scrape.APIChannelInfo(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("channel info: %w", err)
	}
	records, err := scrape.APIChannelVideos(ctx, channelID, maxVideos, includeShorts)
	if err != nil {
		return nil, fmt.Errorf("channel videos: %w", err)
	}

	return &ChannelReport{
		ChannelName:     stats.Title,
		ChannelURL:      "https://www.youtube.com/channel/" + channelID,
		SubscriberCount: stats.SubscriberCount,
		Source:          "api",
		Videos:          scorer.ScoreBatch(records, maxVideos),
	}, nil
}

func scrapedChannelReport(ctx context.Context, ref string, maxVideos int, includeShorts bool) (*ChannelReport, error) {
	channelURL := canonicalChannelURL(ref)
	ch, err := scrape.FetchChannel(ctx, channelURL)
	if err != nil {
		return nil, fmt.Errorf("fetch channel: %w", err)
	}

	records := scrape.CrawlChannel(ctx, ch, maxVideos, includeShorts)
	return &ChannelReport{
		ChannelName:     ch.Name,
		ChannelURL:      ch.URL,
		SubscriberCount: ch.SubscriberCount,
		Source:          "scrape",
		Videos:          scorer.ScoreBatch(records, maxVideos),
	}, nil
}

// resolveChannelID turns any accepted channel reference into a UC id,
// asking the Data API to resolve handles.
func resolveChannelID(ctx context.Context, ref string) (string, error) {
	if id := engine.ExtractChannelID(ref); id != "" {
		return id, nil
	}
	trimmed := strings.TrimSpace(ref)
	if strings.HasPrefix(trimmed, "UC") && len(trimmed) == 24 {
		return trimmed, nil
	}

	handle := engine.ExtractHandle(ref)
	if handle == "" && strings.HasPrefix(trimmed, "@") {
		handle = trimmed
	}
	if handle == "" {
		return "", fmt.Errorf("unrecognized channel reference %q", ref)
	}
	return scrape.APIChannelIDForHandle(ctx, handle)
}

// canonicalChannelURL builds a fetchable URL from a bare ID or handle.
func canonicalChannelURL(ref string) string {
	trimmed := strings.TrimSpace(ref)
	switch {
	case strings.HasPrefix(trimmed, "http://"), strings.HasPrefix(trimmed, "https://"):
		return trimmed
	case strings.HasPrefix(trimmed, "UC") && len(trimmed) == 24:
		return "https://www.youtube.com/channel/" + trimmed
	case strings.HasPrefix(trimmed, "@"):
		return "https://www.youtube.com/" + trimmed
	default:
		return "https://www.youtube.com/@" + trimmed
	}
}

// attachWeakestSuggestions asks the oracle about the lowest-scoring
// videos, capped so a large channel does not fan out into dozens of
// LLM calls.
func attachWeakestSuggestions(ctx context.Context, orc oracle.Oracle, videos []analyze.ScoredRecord) {
	idx := make([]int, len(videos))
	for i := range idx {
		idx[i] = i
	}
	// Selection sort over the index slice; batches are small.
	for i := 0; i < len(idx) && i < maxOracleVideos; i++ {
		min := i
		for j := i + 1; j < len(idx); j++ {
			if videos[idx[j]].Score < videos[idx[min]].Score {
				min = j
			}
		}
		idx[i], idx[min] = idx[min], idx[i]
		attachSuggestions(ctx, orc, &videos[idx[i]])
	}
}
