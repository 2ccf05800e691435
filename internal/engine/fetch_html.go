package engine

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// FetchURLContent extracts main text content from a URL using go-readability.
// Falls back to goquery, then regex-based extraction on failure.
func FetchURLContent(ctx context.Context, rawURL string) (title, content string, err error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	body, err := FetchPage(ctx, rawURL)
	if err != nil {
		return "", "", err
	}

	return ExtractReadable(ctx, rawURL, body)
}

// ExtractReadable runs the readability → goquery → regex extraction chain
// on already-fetched HTML.
func ExtractReadable(ctx context.Context, rawURL string, body []byte) (title, content string, err error) {
	parsedURL, _ := url.Parse(rawURL)
	article, err := readability.FromReader(strings.NewReader(string(body)), parsedURL)
	if err != nil {
		return extractWithGoquery(rawURL, body)
	}

	md, err := htmltomarkdown.ConvertString(article.Content)
	if err != nil {
		md = article.TextContent
	}
	text := strings.TrimSpace(md)
	if len(text) > cfg.MaxContentChars {
		text = text[:cfg.MaxContentChars] + "..."
	}
	return article.Title, text, nil
}

// extractWithGoquery uses goquery for structured HTML parsing when readability fails.
func extractWithGoquery(rawURL string, body []byte) (title, content string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return extractWithRegex(body)
	}

	title = doc.Find("title").First().Text()
	if title == "" {
		doc.Find(`meta[property="og:title"]`).Each(func(i int, s *goquery.Selection) {
			if title == "" {
				title, _ = s.Attr("content")
			}
		})
	}

	removeSelectors := []string{
		"script", "style", "noscript", "iframe", "svg",
		"header", "footer", "nav", "aside",
		".advertisement", ".ad", ".sidebar", ".comments",
		"[role=navigation]", "[role=banner]", "[role=contentinfo]",
	}
	doc.Find(strings.Join(removeSelectors, ", ")).Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	contentSel := doc.Find("article, main, .content, .post-content, .article-content, #content").First()
	if contentSel.Length() == 0 {
		contentSel = doc.Find("body")
	}

	content = CleanText(contentSel.Text())
	if len(content) > cfg.MaxContentChars {
		content = content[:cfg.MaxContentChars] + "..."
	}

	return title, content, nil
}

// extractWithRegex uses regex-based HTML stripping when both readability and goquery fail.
func extractWithRegex(body []byte) (title, content string, err error) {
	html := string(body)

	titleRe := regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	if m := titleRe.FindStringSubmatch(html); len(m) > 1 {
		title = strings.TrimSpace(m[1])
	}

	if title == "" {
		ogTitleRe := regexp.MustCompile(`(?i)<meta[^>]*property=["']og:title["'][^>]*content=["']([^"']+)["']`)
		if m := ogTitleRe.FindStringSubmatch(html); len(m) > 1 {
			title = strings.TrimSpace(m[1])
		}
	}

	for _, tag := range []string{"script", "style", "noscript", "header", "footer", "nav", "aside", "iframe"} {
		re := regexp.MustCompile(`(?is)<` + tag + `[^>]*>.*?</` + tag + `>`)
		html = re.ReplaceAllString(html, "")
	}

	content = CleanText(CleanHTML(html))

	if len(content) > cfg.MaxContentChars {
		content = content[:cfg.MaxContentChars] + "..."
	}

	return title, content, nil
}
