package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	AnalyzeRequests  atomic.Int64
	LLMCalls         atomic.Int64
	LLMErrors        atomic.Int64
	FetchRequests    atomic.Int64
	FetchErrors      atomic.Int64
	VideoScrapes     atomic.Int64
	ChannelScrapes   atomic.Int64
	WebsiteScrapes   atomic.Int64
	DataAPIRequests  atomic.Int64
	CommentRequests  atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"analyze_requests":  metrics.AnalyzeRequests.Load(),
		"llm_calls":         metrics.LLMCalls.Load(),
		"llm_errors":        metrics.LLMErrors.Load(),
		"fetch_requests":    metrics.FetchRequests.Load(),
		"fetch_errors":      metrics.FetchErrors.Load(),
		"video_scrapes":     metrics.VideoScrapes.Load(),
		"channel_scrapes":   metrics.ChannelScrapes.Load(),
		"website_scrapes":   metrics.WebsiteScrapes.Load(),
		"data_api_requests": metrics.DataAPIRequests.Load(),
		"comment_requests":  metrics.CommentRequests.Load(),
		"cache_hits":        hits,
		"cache_misses":      misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"analyze_requests", "llm_calls", "llm_errors",
		"fetch_requests", "fetch_errors",
		"video_scrapes", "channel_scrapes", "website_scrapes",
		"data_api_requests", "comment_requests",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// IncrAnalyzeRequests increments the analyze request counter.
func IncrAnalyzeRequests() { metrics.AnalyzeRequests.Add(1) }

// Incrementors for scrape/ sub-package.
func IncrVideoScrapes()    { metrics.VideoScrapes.Add(1) }
func IncrChannelScrapes()  { metrics.ChannelScrapes.Add(1) }
func IncrWebsiteScrapes()  { metrics.WebsiteScrapes.Add(1) }
func IncrDataAPIRequests() { metrics.DataAPIRequests.Add(1) }
func IncrCommentRequests() { metrics.CommentRequests.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
