package engine

// --- Tool input ---

type ResearchInput struct {
	Topic   string   `json:"topic" jsonschema:"Research topic being investigated"`
	Queries []string `json:"queries" jsonschema:"2-4 search query strings, executed one per call in order"`
}

// --- Video types ---

// VideoInfo is one classified video. Immutable once built.
type VideoInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"` // ISO-8601, as returned by the Data API
}

// ClassifiedVideos are the duration buckets produced by one search:
// shorts run at most 30 seconds, long videos between 30 seconds and 25 minutes.
type ClassifiedVideos struct {
	Shorts     []VideoInfo `json:"shorts"`
	LongVideos []VideoInfo `json:"longVideos"`
}

// SearchResult pairs an executed query with its classified videos.
// Appended to the session's result list and never mutated afterwards.
type SearchResult struct {
	SearchQuery string `json:"searchQuery"`
	ClassifiedVideos
}

// VideoCount is the number of videos across both buckets.
func (c ClassifiedVideos) VideoCount() int {
	return len(c.Shorts) + len(c.LongVideos)
}
