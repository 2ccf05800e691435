// Package oracle produces text-improvement suggestions for analyzed
// records. Two implementations satisfy the same contract: an LLM-backed
// one and a deterministic mock used when no LLM is configured. Callers
// pick the implementation; nothing here branches on availability.
package oracle

import (
	"context"

	"github.com/adityamangal1998/go_tube/internal/engine"
)

// Oracle generates improvement suggestions for a record. A nil
// SuggestionSet with a nil error means "nothing to suggest" and is a
// normal degraded outcome, not a failure.
type Oracle interface {
	Suggest(ctx context.Context, rec engine.Record) (*engine.SuggestionSet, error)
	DeepAnalysis(ctx context.Context, rec engine.Record, engagementRate float64) (string, error)
}
