package scrape

import (
	"testing"

	"github.com/adityamangal1998/go_tube/internal/engine"
)

const watchPageHTML = `<!DOCTYPE html>
<html>
<head>
<title>Some Page - YouTube</title>
<meta property="og:title" content="How to Build a Go Service">
<meta property="og:description" content="A complete walkthrough of building production Go services.">
<meta property="og:image" content="https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg">
<meta name="keywords" content="golang, tutorial, backend">
</head>
<body>
<script>var ytInitialPlayerResponse = {"videoDetails":{"viewCount":"123456","lengthSeconds":"754","ownerChannelName":"Go Dev Channel"},"likeCount":"7890","commentCount":"321","microformat":{"publishDate":"2024-03-01"}};</script>
</body>
</html>`

func TestParseVideoPage(t *testing.T) {
	rec, err := ParseVideoPage("https://www.youtube.com/watch?v=dQw4w9WgXcQ", []byte(watchPageHTML))
	if err != nil {
		t.Fatalf("ParseVideoPage: %v", err)
	}

	if rec.Kind != engine.KindVideo {
		t.Errorf("kind = %q", rec.Kind)
	}
	if rec.ID != "dQw4w9WgXcQ" {
		t.Errorf("id = %q", rec.ID)
	}
	if rec.Title != "How to Build a Go Service" {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.Description == "" {
		t.Error("description empty")
	}
	if len(rec.Tags) != 3 || rec.Tags[0] != "golang" {
		t.Errorf("tags = %v", rec.Tags)
	}
	if rec.ViewCount != 123456 {
		t.Errorf("views = %d", rec.ViewCount)
	}
	if rec.LikeCount != 7890 {
		t.Errorf("likes = %d", rec.LikeCount)
	}
	if rec.CommentCount != 321 {
		t.Errorf("comments = %d", rec.CommentCount)
	}
	if rec.DurationSeconds != 754 || rec.Duration != "12:34" {
		t.Errorf("duration = %d (%q)", rec.DurationSeconds, rec.Duration)
	}
	if rec.Channel != "Go Dev Channel" {
		t.Errorf("channel = %q", rec.Channel)
	}
	if rec.PublishedAt != "2024-03-01" {
		t.Errorf("published = %q", rec.PublishedAt)
	}
}

func TestParseVideoPageFallbacks(t *testing.T) {
	t.Run("title falls back down the chain", func(t *testing.T) {
		html := `<html><head><title>Fallback Title</title></head><body></body></html>`
		rec, err := ParseVideoPage("https://youtu.be/abc12345678", []byte(html))
		if err != nil {
			t.Fatal(err)
		}
		if rec.Title != "Fallback Title" {
			t.Errorf("title = %q", rec.Title)
		}
	})

	t.Run("empty page yields defaults", func(t *testing.T) {
		rec, err := ParseVideoPage("https://youtu.be/abc12345678", []byte("<html></html>"))
		if err != nil {
			t.Fatal(err)
		}
		if rec.Title != "Unknown Title" {
			t.Errorf("title = %q, want Unknown Title", rec.Title)
		}
		if rec.Description != "" || rec.ViewCount != 0 || rec.LikeCount != 0 {
			t.Errorf("expected zero defaults, got %+v", rec)
		}
		if rec.Tags != nil {
			t.Errorf("tags = %v, want nil", rec.Tags)
		}
	})

	t.Run("comma grouped view text", func(t *testing.T) {
		html := `<html><body><span>1,234,567 views</span></body></html>`
		rec, err := ParseVideoPage("https://youtu.be/abc12345678", []byte(html))
		if err != nil {
			t.Fatal(err)
		}
		if rec.ViewCount != 1234567 {
			t.Errorf("views = %d", rec.ViewCount)
		}
	})
}
