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

func registerDeepAnalysis(server *mcp.Server, orc oracle.Oracle) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "deep_analysis",
		Description: "Run a full AI review of one video or page: strengths, weaknesses, SEO fixes, engagement tactics, and growth ideas as markdown. Pass a YouTube video URL to fetch live metadata (with top comments when a Data API key is set), a website URL for an article review, or inline title/description/tags to analyze a draft.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.DeepAnalysisInput) (*mcp.CallToolResult, DeepAnalysisOutput, error) {
		if input.URL == "" && input.Title == "" {
			return nil, DeepAnalysisOutput{}, errors.New("url or title is required")
		}
		engine.IncrAnalyzeRequests()

		cacheKey := engine.CacheKey("deep_analysis", input.URL, input.Title, input.Description,
			strings.Join(input.Tags, ","))
		if out, ok := engine.CacheLoadJSON[DeepAnalysisOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		var rec engine.Record
		var comments []scrape.Comment
		if input.URL != "" {
			if err := engine.ValidateURL(input.URL); err != nil {
				return nil, DeepAnalysisOutput{}, err
			}
			var err error
			rec, err = deepAnalysisRecord(ctx, input.URL)
			if err != nil {
				return nil, DeepAnalysisOutput{}, err
			}
			comments = topComments(ctx, rec)
		} else {
			rec = engine.Record{
				Kind:        engine.KindVideo,
				Title:       input.Title,
				Description: input.Description,
				Tags:        input.Tags,
			}
		}

		rate := analyze.EngagementRate(rec.ViewCount, rec.LikeCount, rec.CommentCount)
		text, err := orc.DeepAnalysis(ctx, rec, rate)
		if err != nil {
			return nil, DeepAnalysisOutput{}, fmt.Errorf("deep analysis: %w", err)
		}

		out := DeepAnalysisOutput{
			Record:         rec,
			EngagementRate: rate,
			TopComments:    comments,
			Analysis:       text,
		}
		if rec.DurationSeconds > 0 {
			out.DurationText = engine.FormatVerbose(rec.DurationSeconds)
		}
		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

// deepAnalysisRecord fetches the metadata behind a URL: YouTube videos
// through the usual record path, anything else as a readable article.
func deepAnalysisRecord(ctx context.Context, rawURL string) (engine.Record, error) {
	if engine.DetectURLKind(rawURL) == engine.KindVideo {
		rec, err := fetchVideoRecord(ctx, rawURL)
		if err != nil {
			return engine.Record{}, fmt.Errorf("fetch video: %w", err)
		}
		return rec, nil
	}

	title, content, err := engine.FetchURLContent(ctx, rawURL)
	if err != nil {
		return engine.Record{}, fmt.Errorf("fetch page: %w", err)
	}
	engine.IncrWebsiteScrapes()
	return engine.Record{
		Kind:        engine.KindWebsite,
		Title:       title,
		Description: content,
		URL:         rawURL,
	}, nil
}

// topComments is best-effort: no API key or a failed call just means an
// analysis without audience feedback.
func topComments(ctx context.Context, rec engine.Record) []scrape.Comment {
	if rec.Kind != engine.KindVideo || rec.ID == "" || !scrape.DataAPIConfigured() {
		return nil
	}
	comments, err := scrape.APIVideoComments(ctx, rec.ID, 10)
	if err != nil {
		slog.Warn("deep_analysis: comments fetch failed", slog.Any("error", err))
		return nil
	}
	return comments
}
