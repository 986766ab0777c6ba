package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	YouTubeSearchRequests atomic.Int64
	YouTubeVideosRequests atomic.Int64
	ResearchStarted       atomic.Int64
	ResearchSteps         atomic.Int64
	ResearchCompleted     atomic.Int64
	ResearchFailures      atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"youtube_search_requests": metrics.YouTubeSearchRequests.Load(),
		"youtube_videos_requests": metrics.YouTubeVideosRequests.Load(),
		"research_started":        metrics.ResearchStarted.Load(),
		"research_steps":          metrics.ResearchSteps.Load(),
		"research_completed":      metrics.ResearchCompleted.Load(),
		"research_failures":       metrics.ResearchFailures.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"youtube_search_requests", "youtube_videos_requests",
		"research_started", "research_steps",
		"research_completed", "research_failures",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sources/ sub-package.
func IncrYouTubeSearch() { metrics.YouTubeSearchRequests.Add(1) }
func IncrYouTubeVideos() { metrics.YouTubeVideosRequests.Add(1) }

// Incrementors for research/ sub-package.
func IncrResearchStarted()   { metrics.ResearchStarted.Add(1) }
func IncrResearchSteps()     { metrics.ResearchSteps.Add(1) }
func IncrResearchCompleted() { metrics.ResearchCompleted.Add(1) }
func IncrResearchFailures()  { metrics.ResearchFailures.Add(1) }
