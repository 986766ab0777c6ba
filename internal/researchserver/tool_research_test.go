package researchserver

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/anatolykoptev/go_ytresearch/internal/engine"
	"github.com/anatolykoptev/go_ytresearch/internal/engine/research"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		input   engine.ResearchInput
		wantErr string
		want    []string
	}{
		{
			name:  "valid",
			input: engine.ResearchInput{Topic: "cats", Queries: []string{"a", "b"}},
			want:  []string{"a", "b"},
		},
		{
			name:  "trims entries",
			input: engine.ResearchInput{Topic: "cats", Queries: []string{" a ", "b", "c", "d"}},
			want:  []string{"a", "b", "c", "d"},
		},
		{
			name:    "missing topic",
			input:   engine.ResearchInput{Queries: []string{"a", "b"}},
			wantErr: "topic is required",
		},
		{
			name:    "blank topic",
			input:   engine.ResearchInput{Topic: "   ", Queries: []string{"a", "b"}},
			wantErr: "topic is required",
		},
		{
			name:    "too few queries",
			input:   engine.ResearchInput{Topic: "cats", Queries: []string{"a"}},
			wantErr: "queries must contain 2-4 entries, got 1",
		},
		{
			name:    "too many queries",
			input:   engine.ResearchInput{Topic: "cats", Queries: []string{"a", "b", "c", "d", "e"}},
			wantErr: "queries must contain 2-4 entries, got 5",
		},
		{
			name:    "no queries",
			input:   engine.ResearchInput{Topic: "cats"},
			wantErr: "queries must contain 2-4 entries, got 0",
		},
		{
			name:    "blank entry",
			input:   engine.ResearchInput{Topic: "cats", Queries: []string{"a", "  "}},
			wantErr: "queries[1] is empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateInput(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// resultJSON decodes the text payload of a tool result.
func resultJSON(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content")
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	return out
}

func TestReportFailureEnvelope(t *testing.T) {
	res, _, err := report(research.Outcome{Err: errors.New("No research in progress")})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)

	payload := resultJSON(t, res)
	assert.Equal(t, "failed", payload["status"])
	assert.Equal(t, "No research in progress", payload["error"])
}

func TestReportStepEnvelope(t *testing.T) {
	res, _, err := report(research.Outcome{Step: &research.StepReport{
		Status:       "in_progress",
		CurrentQuery: "cat videos",
		Results: engine.ClassifiedVideos{
			Shorts:     []engine.VideoInfo{{ID: "v1", Title: "t", Duration: "PT10S"}},
			LongVideos: []engine.VideoInfo{},
		},
		RemainingQueries: []string{"kitten clips"},
		HasMoreQueries:   true,
		Progress:         research.Progress{Current: 1, Total: 2},
	}})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	payload := resultJSON(t, res)
	assert.Equal(t, "in_progress", payload["status"])
	assert.Equal(t, "cat videos", payload["currentQuery"])
	assert.Equal(t, true, payload["hasMoreQueries"])
	assert.Equal(t, map[string]any{"current": float64(1), "total": float64(2)}, payload["progress"])

	results, ok := payload["results"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, results["shorts"], 1)
	assert.Empty(t, results["longVideos"])
}

func TestReportFinalEnvelope(t *testing.T) {
	res, _, err := report(research.Outcome{Final: &research.FinalReport{
		Status: "complete",
		Topic:  "cats",
		Results: []engine.SearchResult{
			{
				SearchQuery: "cat videos",
				ClassifiedVideos: engine.ClassifiedVideos{
					Shorts:     []engine.VideoInfo{{ID: "v1", Title: "t", Duration: "PT10S"}},
					LongVideos: []engine.VideoInfo{},
				},
			},
		},
		TotalQueries: 2,
		TotalVideos:  1,
	}})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	payload := resultJSON(t, res)
	assert.Equal(t, "complete", payload["status"])
	assert.Equal(t, "cats", payload["topic"])
	assert.Equal(t, float64(2), payload["totalQueries"])
	assert.Equal(t, float64(1), payload["totalVideos"])

	results, ok := payload["results"].([]any)
	require.True(t, ok, "complete report carries the result list")
	require.Len(t, results, 1)
	first := results[0].(map[string]any)
	assert.Equal(t, "cat videos", first["searchQuery"])
	assert.Contains(t, first, "shorts")
	assert.Contains(t, first, "longVideos")
}
