package seoserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/adityamangal1998/go_tube/internal/engine"
	"github.com/adityamangal1998/go_tube/internal/engine/analyze"
	"github.com/adityamangal1998/go_tube/internal/engine/oracle"
	"github.com/adityamangal1998/go_tube/internal/engine/scrape"
)

func registerAnalyzeContent(server *mcp.Server, orc oracle.Oracle) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_content",
		Description: "Analyze any URL for SEO: YouTube videos get an optimization score (0-100) with suggestions, YouTube channels get a scored report over recent uploads, and regular websites get an on-page SEO audit (title, meta description, headings, OG/Twitter tags). Pass detailed=true for AI-generated title/description/tag improvements.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.AnalyzeContentInput) (*mcp.CallToolResult, AnalyzeContentOutput, error) {
		if input.URL == "" {
			return nil, AnalyzeContentOutput{}, errors.New("url is required")
		}
		if err := engine.ValidateURL(input.URL); err != nil {
			return nil, AnalyzeContentOutput{}, err
		}
		engine.IncrAnalyzeRequests()

		cacheKey := engine.CacheKey("analyze_content", input.URL,
			fmt.Sprintf("max_%d_shorts_%t_%t_detail_%t", input.MaxVideos, input.IncludeShorts, input.ExcludeShorts, input.Detailed))
		if out, ok := engine.CacheLoadJSON[AnalyzeContentOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		kind := engine.DetectURLKind(input.URL)
		out := AnalyzeContentOutput{Kind: kind}

		switch kind {
		case engine.KindVideo:
			rec, err := fetchVideoRecord(ctx, input.URL)
			if err != nil {
				return nil, out, fmt.Errorf("fetch video: %w", err)
			}
			scored := scorer.AnalyzeRecord(rec)
			if input.Detailed {
				attachSuggestions(ctx, orc, &scored)
			}
			out.Video = &scored

		case engine.KindChannel:
			report, err := buildChannelReport(ctx, orc, input.URL, input.MaxVideos, wantShorts(input), input.Detailed)
			if err != nil {
				return nil, out, err
			}
			out.Channel = report

		default:
			site, err := analyzeWebsite(ctx, input.URL)
			if err != nil {
				return nil, out, err
			}
			out.Website = site
		}

		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

// wantShorts resolves the include/exclude pair: shorts are included
// unless explicitly excluded, and include_shorts wins when both are set.
func wantShorts(input engine.AnalyzeContentInput) bool {
	if input.IncludeShorts {
		return true
	}
	return !input.ExcludeShorts
}

// fetchVideoRecord prefers the Data API when a key is configured and the
// video ID is recognizable, and falls back to page scraping otherwise.
func fetchVideoRecord(ctx context.Context, videoURL string) (engine.Record, error) {
	if id := engine.ExtractVideoID(videoURL); id != "" && scrape.DataAPIConfigured() {
		rec, err := scrape.APIVideoDetails(ctx, id)
		if err == nil {
			return rec, nil
		}
		slog.Warn("analyze: data api failed, falling back to scrape", slog.Any("error", err))
	}
	return scrape.FetchVideo(ctx, videoURL)
}

func attachSuggestions(ctx context.Context, orc oracle.Oracle, scored *analyze.ScoredRecord) {
	set, err := orc.Suggest(ctx, scored.Record)
	if err != nil {
		slog.Warn("analyze: oracle suggestions failed", slog.Any("error", err))
		return
	}
	scored.AISuggestions = set
}

// analyzeWebsite fetches the page once and feeds the same body to the
// structural audit and the readability extractor.
func analyzeWebsite(ctx context.Context, pageURL string) (*WebsiteAnalysis, error) {
	body, err := engine.FetchPage(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch website: %w", err)
	}
	engine.IncrWebsiteScrapes()

	site, err := scrape.ParseWebsitePage(pageURL, body)
	if err != nil {
		return nil, fmt.Errorf("parse website: %w", err)
	}

	wa := &WebsiteAnalysis{
		Site:   site,
		Scored: scorer.AnalyzeRecord(site.Record),
	}
	if _, content, err := engine.ExtractReadable(ctx, pageURL, body); err == nil {
		wa.Content = content
		wa.ReadingTime = engine.ReadingTime(content)
	} else {
		slog.Debug("analyze: readable extraction failed", slog.Any("error", err))
	}
	return wa, nil
}
