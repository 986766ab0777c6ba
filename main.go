// go_ytresearch — YouTube research MCP server.
//
// Exposes one MCP tool: youtube-research — a stateful multi-query research
// session over the YouTube Data API v3. Each call executes one search query,
// classifies the returned videos by duration, and reports progress until the
// complete aggregate is returned. Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_ytresearch/internal/engine"
	"github.com/anatolykoptev/go_ytresearch/internal/engine/research"
	"github.com/anatolykoptev/go_ytresearch/internal/engine/sources"
	"github.com/anatolykoptev/go_ytresearch/internal/researchserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_ytresearch",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_ytresearch",
		Version: version,
	}, nil)

	session := research.NewSession(sources.SearchAndClassify)
	researchserver.RegisterTools(server, session)
	slog.Info("tools registered", slog.Int("count", 1))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_ytresearch",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func initEngine() {
	c := engine.Config{
		YouTubeAPIKey:         env.Str("YOUTUBE_API_KEY", ""),
		YouTubeAPIKeyFallback: env.Str("YOUTUBE_API_KEY_FALLBACK", ""),
		YouTubeAPIBase:        env.Str("YOUTUBE_API_BASE", engine.DefaultYouTubeAPIBase),
		SearchMaxResults:      env.Int("SEARCH_MAX_RESULTS", 50),
		APIRateLimit:          env.Float("API_RATE_LIMIT", 5),
		APIRateBurst:          env.Int("API_RATE_BURST", 5),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
	engine.Init(c)

	if c.YouTubeAPIKey == "" {
		slog.Warn("YOUTUBE_API_KEY not set, youtube-research calls will fail")
	}
}
