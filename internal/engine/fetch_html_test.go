package engine

import (
	"strings"
	"testing"
)

const untitledArticleHTML = `<!DOCTYPE html>
<html>
<head>
<meta property="og:title" content="Scaling Postgres Without Tears">
</head>
<body>
<nav>Home | Blog | About</nav>
<article>
<h1>Scaling Postgres Without Tears</h1>
<p>Connection pooling is the first thing to reach for when a database starts to buckle under load.</p>
</article>
<footer>Copyright 2026</footer>
</body>
</html>`

func TestExtractWithGoqueryOGTitleFallback(t *testing.T) {
	Init(Config{MaxContentChars: 6000})

	title, content, err := extractWithGoquery("https://example.org/post", []byte(untitledArticleHTML))
	if err != nil {
		t.Fatalf("extractWithGoquery: %v", err)
	}
	if title != "Scaling Postgres Without Tears" {
		t.Errorf("title = %q, want og:title content", title)
	}
	if !strings.Contains(content, "Connection pooling") {
		t.Errorf("content = %q, missing article text", content)
	}
	if strings.Contains(content, "Home | Blog") {
		t.Errorf("content = %q, nav was not stripped", content)
	}
}

func TestExtractWithRegexOGTitleFallback(t *testing.T) {
	Init(Config{MaxContentChars: 6000})

	title, content, err := extractWithRegex([]byte(untitledArticleHTML))
	if err != nil {
		t.Fatalf("extractWithRegex: %v", err)
	}
	if title != "Scaling Postgres Without Tears" {
		t.Errorf("title = %q, want og:title content", title)
	}
	if !strings.Contains(content, "Connection pooling") {
		t.Errorf("content = %q, missing article text", content)
	}
}
