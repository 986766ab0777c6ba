package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/anatolykoptev/go_ytresearch/internal/engine"
)

// --- YouTube Data API v3 search types ---

type ytSearchResp struct {
	Items []ytSearchItem `json:"items"`
}

type ytSearchItem struct {
	ID ytSearchItemID `json:"id"`
}

type ytSearchItemID struct {
	VideoID string `json:"videoId"`
}

// searchVideoIDs searches for HD videos matching query and returns their IDs
// in ranking order. Items without a video ID are skipped. No results is not
// an error.
func searchVideoIDs(ctx context.Context, query string) ([]string, error) {
	engine.IncrYouTubeSearch()

	params := url.Values{}
	params.Set("part", "id")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("videoDefinition", "high")
	params.Set("maxResults", strconv.Itoa(engine.Cfg.SearchMaxResults))

	body, err := apiGet(ctx, "/search", params)
	if err != nil {
		return nil, err
	}

	var result ytSearchResp
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode youtube search: %w", err)
	}

	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		ids = append(ids, item.ID.VideoID)
	}
	return ids, nil
}

// SearchAndClassify runs one search query end to end: search for HD videos,
// batch-fetch their metadata, and bucket them by duration. An empty search
// result produces empty buckets, not an error.
func SearchAndClassify(ctx context.Context, query string) (engine.ClassifiedVideos, error) {
	ids, err := searchVideoIDs(ctx, query)
	if err != nil {
		return engine.ClassifiedVideos{}, err
	}
	if len(ids) == 0 {
		return emptyBuckets(), nil
	}

	items, err := fetchVideoDetails(ctx, ids)
	if err != nil {
		return engine.ClassifiedVideos{}, err
	}
	return classifyVideos(items), nil
}
