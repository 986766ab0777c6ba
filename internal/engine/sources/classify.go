package sources

import (
	"github.com/anatolykoptev/go_ytresearch/internal/engine"
)

// Classification thresholds and bucket caps.
const (
	shortMaxSeconds = 30   // shorts: duration <= 30s
	longMaxSeconds  = 1500 // long videos: 30s < duration <= 25min
	maxShorts       = 4
	maxLongVideos   = 2
)

func emptyBuckets() engine.ClassifiedVideos {
	return engine.ClassifiedVideos{
		Shorts:     []engine.VideoInfo{},
		LongVideos: []engine.VideoInfo{},
	}
}

// classifyVideos buckets metadata items by duration, preserving API order.
// Items without an ID or duration are skipped; missing titles default to
// "Untitled"; anything longer than longMaxSeconds is discarded. Iteration
// stops once both buckets are full.
func classifyVideos(items []ytVideoItem) engine.ClassifiedVideos {
	out := emptyBuckets()
	for _, item := range items {
		if len(out.Shorts) == maxShorts && len(out.LongVideos) == maxLongVideos {
			break
		}
		if item.ID == "" || item.ContentDetails.Duration == "" {
			continue
		}

		seconds := ParseISODuration(item.ContentDetails.Duration)
		title := item.Snippet.Title
		if title == "" {
			title = "Untitled"
		}
		video := engine.VideoInfo{
			ID:       item.ID,
			Title:    title,
			Duration: item.ContentDetails.Duration,
		}

		switch {
		case seconds <= shortMaxSeconds:
			if len(out.Shorts) < maxShorts {
				out.Shorts = append(out.Shorts, video)
			}
		case seconds <= longMaxSeconds:
			if len(out.LongVideos) < maxLongVideos {
				out.LongVideos = append(out.LongVideos, video)
			}
		}
	}
	return out
}
