package sources

// YouTube Data API v3 client, split across files by responsibility:
//   youtube_api.go    — request primitives and API key failover
//   youtube_search.go — keyword search (/search), ordered video ID extraction
//   youtube_videos.go — batched metadata lookup (/videos)
//   duration.go       — ISO-8601 duration parsing
//   classify.go       — duration-based bucketing into shorts / long videos
