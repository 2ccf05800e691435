package engine

import (
	"reflect"
	"strings"
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello   world  ", "hello world"},
		{"a\n\nb\tc", "a b c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/abc-_1234xy", "abc-_1234xy"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := ExtractVideoID(tt.url); got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestExtractChannelIDAndHandle(t *testing.T) {
	if got := ExtractChannelID("https://www.youtube.com/channel/UC1234567890123456789012"); got != "UC1234567890123456789012" {
		t.Errorf("ExtractChannelID = %q", got)
	}
	if got := ExtractChannelID("https://www.youtube.com/@creator"); got != "" {
		t.Errorf("ExtractChannelID on handle URL = %q, want empty", got)
	}
	if got := ExtractHandle("https://www.youtube.com/@Some.Creator-1"); got != "@Some.Creator-1" {
		t.Errorf("ExtractHandle = %q", got)
	}
}

func TestValidateURL(t *testing.T) {
	valid := []string{"https://example.com", "http://a.b/c?d=1"}
	for _, u := range valid {
		if err := ValidateURL(u); err != nil {
			t.Errorf("ValidateURL(%q) unexpected error: %v", u, err)
		}
	}
	invalid := []string{"", "ftp://example.com", "example.com/path", "https://"}
	for _, u := range invalid {
		if err := ValidateURL(u); err == nil {
			t.Errorf("ValidateURL(%q) expected error", u)
		}
	}
}

func TestExtractHashtags(t *testing.T) {
	got := ExtractHashtags("check #golang and #seo, also #golang again")
	want := []string{"#golang", "#seo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractHashtags = %v, want %v", got, want)
	}
}

func TestExtractURLs(t *testing.T) {
	got := ExtractURLs("see https://a.com/x and http://b.org.")
	if len(got) != 2 || got[0] != "https://a.com/x" {
		t.Errorf("ExtractURLs = %v", got)
	}
}

func TestReadingTime(t *testing.T) {
	if got := ReadingTime(""); got != 0 {
		t.Errorf("ReadingTime(empty) = %d", got)
	}
	if got := ReadingTime("one two three"); got != 1 {
		t.Errorf("ReadingTime(3 words) = %d, want 1", got)
	}
	// Rounds to the nearest minute: 220 words is closer to 1 than 2.
	if got := ReadingTime(strings.Repeat("word ", 220)); got != 1 {
		t.Errorf("ReadingTime(220 words) = %d, want 1", got)
	}
	if got := ReadingTime(strings.Repeat("word ", 350)); got != 2 {
		t.Errorf("ReadingTime(350 words) = %d, want 2", got)
	}
}
