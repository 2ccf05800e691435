package oracle

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/adityamangal1998/go_tube/internal/engine"
)

func TestExtractKeywords(t *testing.T) {
	t.Run("filters stopwords and short words", func(t *testing.T) {
		got := ExtractKeywords("How to Build the Best Backend in Go")
		want := []string{"build", "best", "backend"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("dedupes in first-seen order", func(t *testing.T) {
		got := ExtractKeywords("docker docker compose docker")
		want := []string{"docker", "compose"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("caps at ten", func(t *testing.T) {
		got := ExtractKeywords("alpha bravo charlie delta echoes foxtrot golfing hotels india juliet kilos limas")
		if len(got) != 10 {
			t.Errorf("got %d keywords", len(got))
		}
	})

	t.Run("empty text", func(t *testing.T) {
		if got := ExtractKeywords(""); got != nil {
			t.Errorf("got %v", got)
		}
	})
}

func TestMockSuggestDeterministic(t *testing.T) {
	o := NewMock()
	rec := engine.Record{
		Title:       "Kubernetes networking explained",
		Description: "short",
		Tags:        []string{"k8s", "devops"},
	}

	a, err := o.Suggest(context.Background(), rec)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := o.Suggest(context.Background(), rec)
	if !reflect.DeepEqual(a, b) {
		t.Error("mock output not deterministic")
	}

	if a.ImprovedTitle == "" || a.ImprovedDescription == "" {
		t.Errorf("missing facets: %+v", a)
	}
	if len(a.SuggestedTags) == 0 || len(a.SuggestedTags) > 12 {
		t.Errorf("tags = %v", a.SuggestedTags)
	}
	if len(a.ContentIdeas) != 5 {
		t.Errorf("ideas = %v", a.ContentIdeas)
	}
	if a.SEOAnalysis == nil || a.SEOAnalysis.TitleScore != 7 {
		t.Errorf("seo = %+v", a.SEOAnalysis)
	}
	if !strings.Contains(a.ContentIdeas[0], "kubernetes") {
		t.Errorf("ideas should use the title's lead keyword: %q", a.ContentIdeas[0])
	}
}

func TestMockTitleBranches(t *testing.T) {
	short := mockTitle("Go tips")
	if !strings.HasPrefix(short, "Ultimate ") || !strings.Contains(short, "Go tips") {
		t.Errorf("short branch = %q", short)
	}

	long := mockTitle("An extremely long video title that runs well past forty characters")
	if !strings.HasPrefix(long, "10 Secret ") || !strings.HasSuffix(long, "... Revealed!") {
		t.Errorf("long branch = %q", long)
	}
}

func TestMockDeepAnalysis(t *testing.T) {
	o := NewMock()
	md, err := o.DeepAnalysis(context.Background(), engine.Record{Title: "Terraform basics"}, 3.5)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(md, `"Terraform basics"`) {
		t.Error("analysis should name the video")
	}
	if !strings.Contains(md, "terraform") {
		t.Error("analysis should use the lead keyword")
	}
	if !strings.Contains(md, "Thumbnail Analysis") {
		t.Error("missing section")
	}

	fallback, _ := o.DeepAnalysis(context.Background(), engine.Record{}, 0)
	if !strings.Contains(fallback, `"your video"`) {
		t.Error("empty title should fall back to generic naming")
	}
}

func TestParseHelpers(t *testing.T) {
	t.Run("tag list", func(t *testing.T) {
		got := parseTagList("go, backend , , " + strings.Repeat("x", 40) + ", devops")
		want := []string{"go", "backend", "devops"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("idea list", func(t *testing.T) {
		raw := "Here are some ideas:\n1. First idea\n2. Second idea\n- Third idea\nnot a list line\n4. Fourth\n5. Fifth\n6. Sixth"
		got := parseIdeaList(raw)
		if len(got) != 5 {
			t.Fatalf("got %d ideas: %v", len(got), got)
		}
		if got[0] != "First idea" || got[2] != "Third idea" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("seo json", func(t *testing.T) {
		out := parseSEOAnalysis(`{"title_score": 9, "main_keywords": ["go"]}`, "ignored")
		if out.TitleScore != 9 || len(out.MainKeywords) != 1 {
			t.Errorf("got %+v", out)
		}

		degraded := parseSEOAnalysis("not json at all", "Docker networking deep dive")
		if degraded.TitleScore != 7 || len(degraded.MainKeywords) == 0 {
			t.Errorf("got %+v", degraded)
		}
	})
}
