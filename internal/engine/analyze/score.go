package analyze

// Config holds the scorer's policy constants. The defaults are the
// long-standing heuristic table; they are construction parameters so a
// caller can rebalance weights without touching the scorer, but nothing
// in this repo overrides them.
type Config struct {
	TitleMinLength    int // title length window lower bound
	TitleMaxLength    int
	TitleMinWords     int // title word-count window
	TitleMaxWords     int
	DescMinLength     int // description length threshold
	DescMinLines      int
	TagsMinCount      int // tag count window
	TagsMaxCount      int
	TagAvgMinLength   float64 // average tag length window
	TagAvgMaxLength   float64

	PointsTitleLength    int
	PointsTitleDigit     int
	PointsTitleEmotional int
	PointsTitleWords     int
	PointsDescLength     int
	PointsDescLink       int
	PointsDescTimestamp  int
	PointsDescHashtag    int
	PointsDescLines      int
	PointsTagsMin        int
	PointsTagsMax        int
	PointsTagAvg         int

	MaxScore int
}

// DefaultConfig returns the standard score table.
func DefaultConfig() Config {
	return Config{
		TitleMinLength:  40,
		TitleMaxLength:  60,
		TitleMinWords:   6,
		TitleMaxWords:   10,
		DescMinLength:   200,
		DescMinLines:    3,
		TagsMinCount:    5,
		TagsMaxCount:    15,
		TagAvgMinLength: 5,
		TagAvgMaxLength: 20,

		PointsTitleLength:    15,
		PointsTitleDigit:     5,
		PointsTitleEmotional: 10,
		PointsTitleWords:     10,
		PointsDescLength:     15,
		PointsDescLink:       5,
		PointsDescTimestamp:  5,
		PointsDescHashtag:    5,
		PointsDescLines:      5,
		PointsTagsMin:        10,
		PointsTagsMax:        10,
		PointsTagAvg:         5,

		MaxScore: 100,
	}
}

// Scorer computes optimization scores and suggestions from field analyses.
type Scorer struct {
	cfg Config
}

// NewScorer builds a Scorer; zero-valued fields in cfg fall back to the
// defaults wholesale (a zero Config means "use the standard table").
func NewScorer(cfg Config) *Scorer {
	if cfg.MaxScore == 0 {
		cfg = DefaultConfig()
	}
	return &Scorer{cfg: cfg}
}

// condition is one row of the score table: points awarded when met, a
// suggestion chosen when not.
type condition struct {
	met     bool
	points  int
	suggest string
}

// conditions materializes the score table against concrete analyses, in
// title → description → tags order.
func (s *Scorer) conditions(title TitleAnalysis, desc DescriptionAnalysis, tags TagsAnalysis) []condition {
	c := s.cfg

	titleLenSuggest := "Consider making your title longer (40-60 characters) for better SEO"
	if title.Length > c.TitleMaxLength {
		titleLenSuggest = "Consider shortening your title (40-60 characters) for better visibility"
	}
	tagCountSuggest := "Add more tags (5-15 recommended) to improve discoverability"
	if tags.Count > c.TagsMaxCount {
		tagCountSuggest = "Reduce the number of tags to focus on most relevant keywords"
	}

	return []condition{
		{title.Length >= c.TitleMinLength && title.Length <= c.TitleMaxLength, c.PointsTitleLength, titleLenSuggest},
		{title.HasDigit, c.PointsTitleDigit, "Adding numbers to titles often increases click-through rates"},
		{title.HasQuestion || title.HasExclamation, c.PointsTitleEmotional, "Consider adding emotional triggers (? or !) to your title"},
		{title.WordCount >= c.TitleMinWords && title.WordCount <= c.TitleMaxWords, c.PointsTitleWords, "Aim for 6-10 words in your title"},
		{desc.Length >= c.DescMinLength, c.PointsDescLength, "Write a more detailed description (at least 200 characters) for better SEO"},
		{desc.HasLink, c.PointsDescLink, "Add relevant links in your description to increase engagement"},
		{desc.HasTimestamp, c.PointsDescTimestamp, "Consider adding timestamps for better user experience"},
		{desc.HasHashtag, c.PointsDescHashtag, "Add relevant hashtags to increase discoverability"},
		{desc.LineCount >= c.DescMinLines, c.PointsDescLines, "Structure your description across multiple lines for readability"},
		{tags.Count >= c.TagsMinCount, c.PointsTagsMin, tagCountSuggest},
		{tags.Count >= 1 && tags.Count <= c.TagsMaxCount, c.PointsTagsMax, tagCountSuggest},
		{tags.AvgLength >= c.TagAvgMinLength && tags.AvgLength <= c.TagAvgMaxLength, c.PointsTagAvg, "Use tags of 5-20 characters; very short or very long tags rank poorly"},
	}
}

// Score sums the met conditions, clamped to MaxScore.
func (s *Scorer) Score(title TitleAnalysis, desc DescriptionAnalysis, tags TagsAnalysis) int {
	score := 0
	for _, cond := range s.conditions(title, desc, tags) {
		if cond.met {
			score += cond.points
		}
	}
	if score > s.cfg.MaxScore {
		score = s.cfg.MaxScore
	}
	return score
}

// Suggestions emits one catalog string per failed condition, in score
// table order, deduplicated (the two tag-count rows share wording).
func (s *Scorer) Suggestions(title TitleAnalysis, desc DescriptionAnalysis, tags TagsAnalysis) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, cond := range s.conditions(title, desc, tags) {
		if cond.met {
			continue
		}
		if _, dup := seen[cond.suggest]; dup {
			continue
		}
		seen[cond.suggest] = struct{}{}
		out = append(out, cond.suggest)
	}
	return out
}
