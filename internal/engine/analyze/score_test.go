package analyze

import (
	"strings"
	"testing"

	"github.com/adityamangal1998/go_tube/internal/engine"
)

func TestScoreEmptyRecord(t *testing.T) {
	s := NewScorer(Config{})
	score := s.Score(AnalyzeTitle(""), AnalyzeDescription(""), AnalyzeTags(nil))
	if score != 0 {
		t.Errorf("empty record score = %d, want 0", score)
	}
}

func TestScoreFullExample(t *testing.T) {
	s := NewScorer(Config{})

	// 50 chars, 8 words, exclamation, no digit.
	title := "Amazing walkthrough of scalable systems design no!"
	if n := len(title); n != 50 {
		t.Fatalf("fixture title is %d chars", n)
	}

	// 250+ chars, one link, 4 lines, no timestamp or hashtag.
	desc := "This guide covers everything you need to know about designing scalable backend systems from scratch.\n" +
		"We walk through load balancing and caching and go deep on tradeoffs between consistency and availability models.\n" +
		"More at https://example.com/guide\n" +
		"Thanks for watching."
	da := AnalyzeDescription(desc)
	if da.Length < 200 || !da.HasLink || da.LineCount != 4 || da.HasTimestamp || da.HasHashtag {
		t.Fatalf("fixture description analysis = %+v", da)
	}

	// 8 tags averaging 10 chars.
	tags := []string{"systemdesi", "scalabilit", "backenddev", "tutorials1", "loadbalanc", "cachinggqq", "databasesx", "monitoring"}
	ta := AnalyzeTags(tags)
	if ta.Count != 8 {
		t.Fatalf("fixture tags = %+v", ta)
	}

	score := s.Score(AnalyzeTitle(title), da, ta)
	if score != 85 {
		t.Errorf("score = %d, want 85", score)
	}
}

func TestScoreCountsCharactersNotBytes(t *testing.T) {
	s := NewScorer(Config{})

	// 50 characters (97 bytes in UTF-8), 7 words.
	title := "Полный обзор масштабируемых систем хранения данных"
	ta := AnalyzeTitle(title)
	if ta.Length != 50 {
		t.Fatalf("title length = %d, want 50", ta.Length)
	}
	if ta.WordCount != 7 {
		t.Fatalf("title word count = %d, want 7", ta.WordCount)
	}

	// Only the title-length and title-word-count rows should be met.
	score := s.Score(ta, AnalyzeDescription(""), AnalyzeTags(nil))
	want := DefaultConfig().PointsTitleLength + DefaultConfig().PointsTitleWords
	if score != want {
		t.Errorf("score = %d, want %d", score, want)
	}

	tags := AnalyzeTags([]string{"кэширование", "репликация"})
	if tags.TotalChars != 21 {
		t.Errorf("tags total chars = %d, want 21", tags.TotalChars)
	}
	if tags.AvgLength != 10.5 {
		t.Errorf("tags avg length = %v, want 10.5", tags.AvgLength)
	}
}

func TestScoreMonotonic(t *testing.T) {
	s := NewScorer(Config{})

	base := s.Score(AnalyzeTitle("short"), AnalyzeDescription(""), AnalyzeTags(nil))
	withDigit := s.Score(AnalyzeTitle("short 5"), AnalyzeDescription(""), AnalyzeTags(nil))
	if withDigit < base {
		t.Errorf("adding a digit lowered the score: %d -> %d", base, withDigit)
	}

	withHashtag := s.Score(AnalyzeTitle("short"), AnalyzeDescription("#go"), AnalyzeTags(nil))
	if withHashtag < base {
		t.Errorf("adding a hashtag lowered the score: %d -> %d", base, withHashtag)
	}
}

func TestScoreClamp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PointsTitleLength = 500
	s := NewScorer(cfg)

	title := AnalyzeTitle(strings.Repeat("a", 25) + " " + strings.Repeat("b", 24))
	if score := s.Score(title, AnalyzeDescription(""), AnalyzeTags(nil)); score > 100 {
		t.Errorf("score %d exceeds clamp", score)
	}
}

func TestSuggestionsOrderAndInverse(t *testing.T) {
	s := NewScorer(Config{})

	t.Run("everything failed", func(t *testing.T) {
		got := s.Suggestions(AnalyzeTitle(""), AnalyzeDescription(""), AnalyzeTags(nil))
		if len(got) == 0 {
			t.Fatal("expected suggestions for an empty record")
		}
		// Title suggestions come first, tag suggestions last.
		if !strings.Contains(got[0], "title") {
			t.Errorf("first suggestion = %q, want a title suggestion", got[0])
		}
		if !strings.Contains(got[len(got)-1], "tags") {
			t.Errorf("last suggestion = %q, want a tags suggestion", got[len(got)-1])
		}
	})

	t.Run("met conditions emit nothing", func(t *testing.T) {
		title := AnalyzeTitle("How do you build scalable Go services in 2024 fast?")
		got := s.Suggestions(title, AnalyzeDescription(""), AnalyzeTags(nil))
		for _, sg := range got {
			if strings.Contains(sg, "title") {
				t.Errorf("unexpected title suggestion %q", sg)
			}
		}
	})

	t.Run("too many tags flips the wording", func(t *testing.T) {
		tags := make([]string, 20)
		for i := range tags {
			tags[i] = "tagvalue"
		}
		got := s.Suggestions(AnalyzeTitle(""), AnalyzeDescription(""), AnalyzeTags(tags))
		found := false
		for _, sg := range got {
			if strings.Contains(sg, "Reduce the number of tags") {
				found = true
			}
			if strings.Contains(sg, "Add more tags") {
				t.Errorf("contradictory suggestion %q with 20 tags", sg)
			}
		}
		if !found {
			t.Error("expected the reduce-tags suggestion")
		}
	})
}

func TestAnalyzeRecordAndBatch(t *testing.T) {
	s := NewScorer(Config{})

	recs := []engine.Record{
		{Title: "First", ViewCount: 100, LikeCount: 8, CommentCount: 2},
		{Title: "Second", ViewCount: 1000, LikeCount: 10},
		{Title: "Third"},
	}

	scored := s.ScoreBatch(recs, 2)
	if len(scored) != 2 {
		t.Fatalf("batch truncation: got %d", len(scored))
	}
	if scored[0].Record.Title != "First" || scored[1].Record.Title != "Second" {
		t.Errorf("order not preserved: %+v", scored)
	}
	if scored[0].EngagementRate != 10 {
		t.Errorf("engagement = %f, want 10", scored[0].EngagementRate)
	}
	if scored[0].EngagementTier != "Excellent" {
		t.Errorf("tier = %q", scored[0].EngagementTier)
	}

	sum := Summarize(scored)
	if sum.TotalVideos != 2 || sum.TotalViews != 1100 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.TopPerforming == nil || sum.TopPerforming.Record.Title != "First" {
		t.Errorf("top performer = %+v", sum.TopPerforming)
	}
}

func TestEngagementRateZeroViews(t *testing.T) {
	if got := EngagementRate(0, 5, 5); got != 1000 {
		t.Errorf("EngagementRate(0,5,5) = %f, want 1000 (max(views,1) guard)", got)
	}
}
