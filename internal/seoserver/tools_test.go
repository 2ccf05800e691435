package seoserver

import (
	"context"
	"testing"

	"github.com/adityamangal1998/go_tube/internal/engine"
	"github.com/adityamangal1998/go_tube/internal/engine/analyze"
)

func TestWantShorts(t *testing.T) {
	tests := []struct {
		name    string
		include bool
		exclude bool
		want    bool
	}{
		{"default includes shorts", false, false, true},
		{"exclude set", false, true, false},
		{"include set", true, false, true},
		{"include wins over exclude", true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wantShorts(engine.AnalyzeContentInput{IncludeShorts: tt.include, ExcludeShorts: tt.exclude})
			if got != tt.want {
				t.Errorf("wantShorts(include=%t, exclude=%t) = %t, want %t", tt.include, tt.exclude, got, tt.want)
			}
		})
	}
}

func TestCanonicalChannelURL(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"https://www.youtube.com/@somecreator", "https://www.youtube.com/@somecreator"},
		{"UCdQw4w9WgXcRdQw4w9WgXcR", "https://www.youtube.com/channel/UCdQw4w9WgXcRdQw4w9WgXcR"},
		{"@somecreator", "https://www.youtube.com/@somecreator"},
		{"somecreator", "https://www.youtube.com/@somecreator"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := canonicalChannelURL(tt.ref); got != tt.want {
				t.Errorf("canonicalChannelURL(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolveChannelID(t *testing.T) {
	ctx := context.Background()

	t.Run("url with channel id", func(t *testing.T) {
		got, err := resolveChannelID(ctx, "https://www.youtube.com/channel/UCdQw4w9WgXcRdQw4w9WgXcR")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "UCdQw4w9WgXcRdQw4w9WgXcR" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("bare channel id", func(t *testing.T) {
		got, err := resolveChannelID(ctx, "UCdQw4w9WgXcRdQw4w9WgXcR")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "UCdQw4w9WgXcRdQw4w9WgXcR" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("garbage reference", func(t *testing.T) {
		if _, err := resolveChannelID(ctx, "not a channel at all"); err == nil {
			t.Error("expected error for unrecognized reference")
		}
	})
}

// fakeOracle records which titles were sent to Suggest.
type fakeOracle struct {
	asked []string
}

func (f *fakeOracle) Suggest(ctx context.Context, rec engine.Record) (*engine.SuggestionSet, error) {
	f.asked = append(f.asked, rec.Title)
	return &engine.SuggestionSet{ImprovedTitle: "better " + rec.Title}, nil
}

func (f *fakeOracle) DeepAnalysis(ctx context.Context, rec engine.Record, engagementRate float64) (string, error) {
	return "analysis of " + rec.Title, nil
}

func TestAttachWeakestSuggestions(t *testing.T) {
	// Scores 90, 10, 50, 20, 70, 30, 40: the five weakest are asked.
	scores := []int{90, 10, 50, 20, 70, 30, 40}
	videos := make([]analyze.ScoredRecord, len(scores))
	for i, s := range scores {
		videos[i].Record.Title = string(rune('a' + i))
		videos[i].Score = s
	}

	orc := &fakeOracle{}
	attachWeakestSuggestions(context.Background(), orc, videos)

	if len(orc.asked) != maxOracleVideos {
		t.Fatalf("asked %d videos, want %d", len(orc.asked), maxOracleVideos)
	}
	askedSet := make(map[string]bool, len(orc.asked))
	for _, title := range orc.asked {
		askedSet[title] = true
	}
	for _, weak := range []string{"b", "d", "f", "g", "c"} {
		if !askedSet[weak] {
			t.Errorf("weak video %q was not sent to the oracle", weak)
		}
	}
	if askedSet["e"] || askedSet["a"] {
		t.Error("strong videos should not be sent to the oracle")
	}

	// Suggestions land on the records in place.
	for i := range videos {
		wantSet := askedSet[videos[i].Record.Title]
		gotSet := videos[i].AISuggestions != nil
		if wantSet != gotSet {
			t.Errorf("video %q: suggestions attached = %t, want %t", videos[i].Record.Title, gotSet, wantSet)
		}
	}
}

func TestAttachSuggestionsOnScoredRecord(t *testing.T) {
	scored := scorer.AnalyzeRecord(engine.Record{Title: "Go tutorial"})
	orc := &fakeOracle{}
	attachSuggestions(context.Background(), orc, &scored)
	if scored.AISuggestions == nil || scored.AISuggestions.ImprovedTitle != "better Go tutorial" {
		t.Errorf("suggestions not attached: %+v", scored.AISuggestions)
	}
}
