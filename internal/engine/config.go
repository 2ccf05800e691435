package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey             string
	LLMAPIKeyFallbacks    []string
	LLMAPIBase            string
	LLMModel              string
	LLMTemperature        float64
	LLMMaxTokens          int
	YouTubeAPIKey         string // YouTube Data API v3; empty = scraping only
	YouTubeAPIKeyFallback string // secondary key tried on quota errors
	MaxVideos             int    // default channel crawl size
	MaxContentChars       int
	FetchTimeout          time.Duration
	CacheMaxEntries       int
	CacheCleanupInterval  time.Duration
	HTTPClient            *http.Client
	BrowserClient         *BrowserClient // nil = plain HTTP for YouTube pages
	LLMClient             *llm.Client    // nil = LLM suggestions disabled
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (scrape, analyze, oracle).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
