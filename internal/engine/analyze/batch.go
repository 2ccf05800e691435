package analyze

import (
	"github.com/adityamangal1998/go_tube/internal/engine"
)

// ScoredRecord is one record with its full analysis attached.
type ScoredRecord struct {
	Record         engine.Record         `json:"record"`
	Title          TitleAnalysis         `json:"title_analysis"`
	Description    DescriptionAnalysis   `json:"description_analysis"`
	Tags           TagsAnalysis          `json:"tags_analysis"`
	EngagementRate float64               `json:"engagement_rate"`
	EngagementTier string                `json:"engagement_category"`
	Score          int                   `json:"optimization_score"`
	ScoreTier      string                `json:"optimization_category"`
	Suggestions    []string              `json:"suggestions,omitempty"`
	AISuggestions  *engine.SuggestionSet `json:"ai_suggestions,omitempty"`
}

// AnalyzeRecord runs the full heuristic pass over one record.
func (s *Scorer) AnalyzeRecord(rec engine.Record) ScoredRecord {
	title := AnalyzeTitle(rec.Title)
	desc := AnalyzeDescription(rec.Description)
	tags := AnalyzeTags(rec.Tags)

	rate := EngagementRate(rec.ViewCount, rec.LikeCount, rec.CommentCount)
	score := s.Score(title, desc, tags)

	return ScoredRecord{
		Record:         rec,
		Title:          title,
		Description:    desc,
		Tags:           tags,
		EngagementRate: rate,
		EngagementTier: EngagementCategory(rate),
		Score:          score,
		ScoreTier:      ScoreCategory(score),
		Suggestions:    s.Suggestions(title, desc, tags),
	}
}

// ScoreBatch analyzes up to maxItems records in input order. Scoring is
// pure computation, so the batch is a plain loop; maxItems <= 0 means
// no truncation.
func (s *Scorer) ScoreBatch(records []engine.Record, maxItems int) []ScoredRecord {
	if maxItems > 0 && len(records) > maxItems {
		records = records[:maxItems]
	}

	out := make([]ScoredRecord, len(records))
	for i, rec := range records {
		out[i] = s.AnalyzeRecord(rec)
	}
	return out
}

// Summary aggregates a scored batch.
type Summary struct {
	TotalVideos               int           `json:"total_videos"`
	TotalViews                int64         `json:"total_views"`
	AvgEngagement             float64       `json:"avg_engagement"`
	AvgScore                  float64       `json:"avg_score"`
	TopPerforming             *ScoredRecord `json:"top_performing,omitempty"`
	OptimizationOpportunities int           `json:"optimization_opportunities"`
}

// Summarize computes batch-level statistics. The top performer is the
// record with the highest engagement rate; opportunities count every
// suggestion emitted across the batch.
func Summarize(scored []ScoredRecord) Summary {
	sum := Summary{TotalVideos: len(scored)}
	if len(scored) == 0 {
		return sum
	}

	topIdx := 0
	var totalEngagement, totalScore float64
	for i, sr := range scored {
		sum.TotalViews += sr.Record.ViewCount
		totalEngagement += sr.EngagementRate
		totalScore += float64(sr.Score)
		sum.OptimizationOpportunities += len(sr.Suggestions)
		if sr.EngagementRate > scored[topIdx].EngagementRate {
			topIdx = i
		}
	}

	sum.AvgEngagement = totalEngagement / float64(len(scored))
	sum.AvgScore = totalScore / float64(len(scored))
	top := scored[topIdx]
	sum.TopPerforming = &top
	return sum
}
