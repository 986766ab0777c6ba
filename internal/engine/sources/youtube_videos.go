package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_ytresearch/internal/engine"
)

// --- YouTube Data API v3 videos.list types ---

type ytVideosResp struct {
	Items []ytVideoItem `json:"items"`
}

type ytVideoItem struct {
	ID             string           `json:"id"`
	Snippet        ytVideoSnippet   `json:"snippet"`
	ContentDetails ytContentDetails `json:"contentDetails"`
}

type ytVideoSnippet struct {
	Title string `json:"title"`
}

type ytContentDetails struct {
	Duration string `json:"duration"` // ISO-8601, e.g. "PT4M13S"
}

// fetchVideoDetails fetches content details and snippet for the given video
// IDs in a single batched lookup, preserving the order the API returns.
func fetchVideoDetails(ctx context.Context, ids []string) ([]ytVideoItem, error) {
	engine.IncrYouTubeVideos()

	params := url.Values{}
	params.Set("part", "contentDetails,snippet")
	params.Set("id", strings.Join(ids, ","))

	body, err := apiGet(ctx, "/videos", params)
	if err != nil {
		return nil, err
	}

	var result ytVideosResp
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode youtube videos: %w", err)
	}
	return result.Items, nil
}
