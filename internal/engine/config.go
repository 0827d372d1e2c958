package engine

import (
	"net/http"
	"time"
)

// DefaultUserAgent is sent on every page fetch. YouTube serves stripped or
// consent-wall markup to generic clients, so it must look like a desktop browser.
const DefaultUserAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:123.0) Gecko/20100101 Firefox/123.0"

// DefaultYouTubeBaseURL is the origin watch and playlist URLs are built from.
const DefaultYouTubeBaseURL = "https://www.youtube.com"

// Config holds all engine configuration, injected from main.
type Config struct {
	UserAgent            string
	YouTubeBaseURL       string
	FetchTimeout         time.Duration // 0 = no deadline beyond the caller's context
	MaxBodyBytes         int64
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HTTPClient           *http.Client
	BrowserClient        *BrowserClient // nil = plain net/http fetches
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
// Zero fields fall back to defaults.
func Init(c Config) {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.YouTubeBaseURL == "" {
		c.YouTubeBaseURL = DefaultYouTubeBaseURL
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = 8 << 20
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	cfg = c
	Cfg = &cfg
}
