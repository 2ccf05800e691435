package engine

// Kind classifies what a URL resolved to.
type Kind string

const (
	KindVideo   Kind = "video"
	KindChannel Kind = "channel"
	KindWebsite Kind = "website"
)

// Record is the normalized in-memory representation of one video, channel,
// or website after extraction. Counts default to 0 when unavailable; a
// record built from an empty document carries the documented field defaults.
type Record struct {
	Kind            Kind     `json:"kind"`
	ID              string   `json:"id,omitempty"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags,omitempty"`
	ViewCount       int64    `json:"view_count"`
	LikeCount       int64    `json:"like_count"`
	CommentCount    int64    `json:"comment_count"`
	DurationSeconds int      `json:"duration_seconds"`
	Duration        string   `json:"duration,omitempty"` // clock form, e.g. "12:34"
	PublishedAt     string   `json:"published_at,omitempty"`
	Thumbnail       string   `json:"thumbnail,omitempty"`
	URL             string   `json:"url"`
	Channel         string   `json:"channel,omitempty"`
}

// SEOAnalysis is the oracle's structured SEO assessment of a record.
type SEOAnalysis struct {
	TitleScore       int      `json:"title_score"`
	DescriptionScore int      `json:"description_score"`
	TagsScore        int      `json:"tags_score"`
	MainKeywords     []string `json:"main_keywords"`
	MissingKeywords  []string `json:"missing_keywords"`
}

// SuggestionSet is the oracle's output. Every facet is optional: an absent
// facet means the oracle produced no usable output for it, which is a
// degraded result, not an error.
type SuggestionSet struct {
	ImprovedTitle       string       `json:"improved_title,omitempty"`
	ImprovedDescription string       `json:"improved_description,omitempty"`
	SuggestedTags       []string     `json:"suggested_tags,omitempty"`
	ContentIdeas        []string     `json:"content_ideas,omitempty"`
	SEOAnalysis         *SEOAnalysis `json:"seo_analysis,omitempty"`
}

// --- MCP tool inputs ---

type AnalyzeContentInput struct {
	URL           string `json:"url" jsonschema:"Website or YouTube channel/video URL to analyze"`
	MaxVideos     int    `json:"max_videos,omitempty" jsonschema:"Max channel videos to analyze (default 20)"`
	IncludeShorts bool   `json:"include_shorts,omitempty" jsonschema:"Include videos of 60 seconds or less (default true when omitted together with exclude_shorts)"`
	ExcludeShorts bool   `json:"exclude_shorts,omitempty" jsonschema:"Skip short-form videos when analyzing a channel"`
	Detailed      bool   `json:"detailed,omitempty" jsonschema:"Also ask the AI oracle for improved titles/descriptions/tags"`
}

type ChannelReportInput struct {
	Channel       string `json:"channel" jsonschema:"Channel URL, channel ID (UC...), or @handle"`
	MaxVideos     int    `json:"max_videos,omitempty" jsonschema:"Max videos to include (default 20)"`
	ExcludeShorts bool   `json:"exclude_shorts,omitempty" jsonschema:"Skip short-form videos"`
	Detailed      bool   `json:"detailed,omitempty" jsonschema:"Also ask the AI oracle for per-video suggestions"`
}

type ImproveMetadataInput struct {
	Title        string   `json:"title" jsonschema:"Current title"`
	Description  string   `json:"description,omitempty" jsonschema:"Current description"`
	Tags         []string `json:"tags,omitempty" jsonschema:"Current tags"`
	ViewCount    int64    `json:"view_count,omitempty" jsonschema:"View count, if known"`
	LikeCount    int64    `json:"like_count,omitempty" jsonschema:"Like count, if known"`
	CommentCount int64    `json:"comment_count,omitempty" jsonschema:"Comment count, if known"`
	Duration     string   `json:"duration,omitempty" jsonschema:"Duration as M:SS or H:MM:SS"`
}

type DeepAnalysisInput struct {
	URL   string `json:"url,omitempty" jsonschema:"YouTube video URL to fetch and analyze"`
	Title string `json:"title,omitempty" jsonschema:"Title, when analyzing inline metadata instead of a URL"`

	Description string   `json:"description,omitempty" jsonschema:"Description, for inline analysis"`
	Tags        []string `json:"tags,omitempty" jsonschema:"Tags, for inline analysis"`
}
