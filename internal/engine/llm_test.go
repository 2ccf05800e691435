package engine

import (
	"context"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\nplain\n```", "plain"},
		{"no fences", "no fences"},
		{"  padded  ", "padded"},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractJSONAnswer(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"clean", `{"answer": "hello"}`, "hello"},
		{"escaped quote", `{"answer": "say \"hi\""}`, `say "hi"`},
		{"newline escape", `{"answer": "line1\nline2"}`, "line1\nline2"},
		{"missing field", `{"other": "x"}`, ""},
		{"unterminated", `{"answer": "trailing`, "trailing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSONAnswer(tt.raw); got != tt.want {
				t.Errorf("ExtractJSONAnswer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCallLLMNoClient(t *testing.T) {
	Init(Config{})
	if _, err := CallLLM(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error without configured client")
	}
	if _, err := CallLLMWith(context.Background(), "prompt", 0.5, 100); err == nil {
		t.Fatal("expected error without configured client")
	}
	if _, _, err := CallLLMJSON[SEOAnalysis](context.Background(), "prompt"); err == nil {
		t.Fatal("expected error without configured client")
	}
}
