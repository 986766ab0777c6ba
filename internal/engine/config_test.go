package engine

import (
	"strings"
	"testing"
)

func TestInitDefaults(t *testing.T) {
	Init(Config{})

	if Cfg.YouTubeAPIBase != DefaultYouTubeAPIBase {
		t.Errorf("base = %q, want default", Cfg.YouTubeAPIBase)
	}
	if Cfg.SearchMaxResults != 50 {
		t.Errorf("SearchMaxResults = %d, want 50", Cfg.SearchMaxResults)
	}
	if Cfg.HTTPClient == nil {
		t.Error("HTTPClient default missing")
	}
}

func TestInitCapsSearchMaxResults(t *testing.T) {
	Init(Config{SearchMaxResults: 500})
	if Cfg.SearchMaxResults != 50 {
		t.Errorf("SearchMaxResults = %d, want capped at 50", Cfg.SearchMaxResults)
	}
}

func TestFormatMetrics(t *testing.T) {
	out := FormatMetrics()
	for _, key := range []string{
		"youtube_search_requests", "youtube_videos_requests",
		"research_started", "research_steps", "research_completed", "research_failures",
	} {
		if !strings.Contains(out, key+" ") {
			t.Errorf("metrics output missing %q:\n%s", key, out)
		}
	}
}
