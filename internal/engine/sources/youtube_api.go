package sources

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_ytresearch/internal/engine"
)

// apiGet issues a Data API GET with the configured key. When the primary key
// is quota-exhausted (403) and a fallback key is configured, the request is
// reissued once with the fallback. Any other failure propagates as-is.
func apiGet(ctx context.Context, path string, params url.Values) ([]byte, error) {
	keys := []string{engine.Cfg.YouTubeAPIKey}
	if engine.Cfg.YouTubeAPIKeyFallback != "" {
		keys = append(keys, engine.Cfg.YouTubeAPIKeyFallback)
	}

	var lastErr error
	for _, key := range keys {
		body, status, err := doAPIGet(ctx, path, params, key)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if status != http.StatusForbidden {
			return nil, err
		}
		slog.Debug("youtube data API key quota-exhausted", slog.Any("error", err))
	}
	return nil, lastErr
}

func doAPIGet(ctx context.Context, path string, params url.Values, apiKey string) ([]byte, int, error) {
	p := url.Values{}
	for k, vs := range params {
		p[k] = vs
	}
	p.Set("key", apiKey)
	apiURL := engine.Cfg.YouTubeAPIBase + path + "?" + p.Encode()

	resp, err := engine.APIGet(ctx, apiURL)
	if err != nil {
		return nil, 0, fmt.Errorf("youtube data API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, resp.StatusCode, fmt.Errorf("youtube data API %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8*1024*1024))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read youtube data API response: %w", err)
	}
	return body, resp.StatusCode, nil
}
