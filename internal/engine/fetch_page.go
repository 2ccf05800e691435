package engine

import (
	"context"
	"fmt"
)

// FetchPage downloads a page and returns its raw HTML. When a stealth
// browser client is configured it is preferred (YouTube serves full
// pages only to browser-like clients); otherwise a plain retrying GET.
func FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	if err := ValidateURL(pageURL); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	if cfg.BrowserClient != nil {
		headers := ChromeHeaders()
		headers["accept"] = "text/html,application/xhtml+xml,application/xml;q=0.9"
		headers["accept-language"] = "en-US,en;q=0.9"

		metrics.FetchRequests.Add(1)
		data, err := RetryDo(ctx, DefaultRetryConfig, func() ([]byte, error) {
			d, _, s, e := cfg.BrowserClient.Do("GET", pageURL, headers, nil)
			if e != nil {
				return nil, e
			}
			if s != 200 {
				return nil, fmt.Errorf("status %d", s)
			}
			return d, nil
		})
		if err != nil {
			metrics.FetchErrors.Add(1)
			return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
		}
		return data, nil
	}

	resp, err := fetchWithRetry(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", pageURL, err)
	}
	return body, nil
}
