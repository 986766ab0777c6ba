package engine

import (
	"net/http"

	"golang.org/x/time/rate"
)

// DefaultYouTubeAPIBase is the production YouTube Data API v3 endpoint.
const DefaultYouTubeAPIBase = "https://www.googleapis.com/youtube/v3"

// Config holds all engine configuration, injected from main.
type Config struct {
	YouTubeAPIKey         string
	YouTubeAPIKeyFallback string  // tried once when the primary key is quota-exhausted
	YouTubeAPIBase        string  // overridable for tests; empty = DefaultYouTubeAPIBase
	SearchMaxResults      int     // per-query search page size, capped at 50 by the API
	APIRateLimit          float64 // outbound Data API requests per second; <=0 = unlimited
	APIRateBurst          int
	HTTPClient            *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources, research).
// Always points to the current cfg value.
var Cfg = &cfg

// apiLimiter paces outbound Data API requests; built in Init.
var apiLimiter *rate.Limiter

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.YouTubeAPIBase == "" {
		c.YouTubeAPIBase = DefaultYouTubeAPIBase
	}
	if c.SearchMaxResults <= 0 || c.SearchMaxResults > 50 {
		c.SearchMaxResults = 50
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}

	limit := rate.Inf
	if c.APIRateLimit > 0 {
		limit = rate.Limit(c.APIRateLimit)
	}
	burst := c.APIRateBurst
	if burst <= 0 {
		burst = 1
	}
	apiLimiter = rate.NewLimiter(limit, burst)

	cfg = c
	Cfg = &cfg
}
