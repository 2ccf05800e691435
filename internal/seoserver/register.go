// Package seoserver exposes the analysis engine as MCP tools:
// analyze_content, channel_report, improve_metadata, deep_analysis.
package seoserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/adityamangal1998/go_tube/internal/engine"
	"github.com/adityamangal1998/go_tube/internal/engine/analyze"
	"github.com/adityamangal1998/go_tube/internal/engine/oracle"
	"github.com/adityamangal1998/go_tube/internal/engine/scrape"
)

// scorer is shared by all tools; the default table, never reconfigured
// at runtime.
var scorer = analyze.NewScorer(analyze.Config{})

// RegisterTools registers all SEO analysis tools on the given MCP
// server. The oracle is injected so main can pick the LLM-backed or the
// deterministic implementation.
func RegisterTools(server *mcp.Server, orc oracle.Oracle) {
	registerAnalyzeContent(server, orc)
	registerChannelReport(server, orc)
	registerImproveMetadata(server, orc)
	registerDeepAnalysis(server, orc)
}

// --- tool outputs ---

// ChannelReport is the scored view of one channel.
type ChannelReport struct {
	ChannelName     string                 `json:"channel_name"`
	ChannelURL      string                 `json:"channel_url,omitempty"`
	SubscriberCount int64                  `json:"subscriber_count"`
	SubscriberText  string                 `json:"subscriber_count_text,omitempty"` // "1.2M"
	Source          string                 `json:"source"`                          // "api" or "scrape"
	Videos          []analyze.ScoredRecord `json:"videos"`
	Summary         analyze.Summary        `json:"summary"`
	TotalViewsText  string                 `json:"total_views_text,omitempty"` // "1,234,567"
}

// WebsiteAnalysis pairs the structural report with the heuristic score
// of the site's title/description/keywords.
type WebsiteAnalysis struct {
	Site        scrape.Website       `json:"site"`
	Scored      analyze.ScoredRecord `json:"scored"`
	Content     string               `json:"content,omitempty"` // readable body as markdown
	ReadingTime int                  `json:"reading_time_minutes,omitempty"`
}

// AnalyzeContentOutput carries exactly one of the three branches,
// selected by Kind.
type AnalyzeContentOutput struct {
	Kind    engine.Kind           `json:"kind"`
	Video   *analyze.ScoredRecord `json:"video,omitempty"`
	Channel *ChannelReport        `json:"channel,omitempty"`
	Website *WebsiteAnalysis      `json:"website,omitempty"`
}

// ImproveMetadataOutput pairs the heuristic verdict with the oracle's
// suggestions. Suggestions may be absent when the oracle had nothing.
type ImproveMetadataOutput struct {
	Heuristic   analyze.ScoredRecord  `json:"heuristic"`
	Suggestions *engine.SuggestionSet `json:"suggestions,omitempty"`
}

// DeepAnalysisOutput is the markdown review plus the numbers it was
// based on. TopComments is filled only for videos when the Data API is
// configured.
type DeepAnalysisOutput struct {
	Record         engine.Record    `json:"record"`
	DurationText   string           `json:"duration_text,omitempty"` // "12m 34s"
	EngagementRate float64          `json:"engagement_rate"`
	TopComments    []scrape.Comment `json:"top_comments,omitempty"`
	Analysis       string           `json:"analysis"`
}
