package seoserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/adityamangal1998/go_tube/internal/engine"
	"github.com/adityamangal1998/go_tube/internal/engine/oracle"
)

func registerImproveMetadata(server *mcp.Server, orc oracle.Oracle) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "improve_metadata",
		Description: "Improve video metadata without fetching anything: pass a title (plus optional description, tags, counts, duration) and get back the heuristic optimization score with suggestions and AI-generated alternatives (improved title, description, tags, content ideas).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ImproveMetadataInput) (*mcp.CallToolResult, ImproveMetadataOutput, error) {
		if input.Title == "" {
			return nil, ImproveMetadataOutput{}, errors.New("title is required")
		}
		engine.IncrAnalyzeRequests()

		cacheKey := engine.CacheKey("improve_metadata", input.Title, input.Description,
			strings.Join(input.Tags, ","),
			fmt.Sprintf("v%d_l%d_c%d_%s", input.ViewCount, input.LikeCount, input.CommentCount, input.Duration))
		if out, ok := engine.CacheLoadJSON[ImproveMetadataOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		rec := engine.Record{
			Kind:         engine.KindVideo,
			Title:        input.Title,
			Description:  input.Description,
			Tags:         input.Tags,
			ViewCount:    input.ViewCount,
			LikeCount:    input.LikeCount,
			CommentCount: input.CommentCount,
		}
		if input.Duration != "" {
			secs, err := engine.ParseClock(input.Duration)
			if err != nil {
				// Also accept verbose forms like "12m 34s".
				secs = engine.ParseDurationText(input.Duration)
				if secs == 0 {
					return nil, ImproveMetadataOutput{}, fmt.Errorf("duration: %w", err)
				}
			}
			rec.DurationSeconds = secs
			rec.Duration = engine.FormatClock(secs)
		}

		out := ImproveMetadataOutput{Heuristic: scorer.AnalyzeRecord(rec)}

		set, err := orc.Suggest(ctx, rec)
		if err != nil {
			slog.Warn("improve_metadata: oracle failed", slog.Any("error", err))
		} else {
			out.Suggestions = set
		}

		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
