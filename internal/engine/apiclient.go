package engine

import (
	"context"
	"net/http"
)

// UserAgentBot identifies the service to upstream APIs.
const UserAgentBot = "GoYTResearch/1.0"

// APIGet performs a rate-limited GET against an upstream JSON API.
// The limiter wait is the only blocking work before the network round trip.
func APIGet(ctx context.Context, apiURL string) (*http.Response, error) {
	if apiLimiter != nil {
		if err := apiLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgentBot)
	req.Header.Set("Accept", "application/json")
	return Cfg.HTTPClient.Do(req)
}
