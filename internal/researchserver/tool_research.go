package researchserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_ytresearch/internal/engine"
	"github.com/anatolykoptev/go_ytresearch/internal/engine/research"
	"github.com/anatolykoptev/go_ytresearch/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	minQueries = 2
	maxQueries = 4
)

func registerYouTubeResearch(server *mcp.Server, session *research.Session) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube-research",
		Description: "Incremental YouTube research. Pass a topic plus 2-4 search queries; each call executes one query and classifies its videos into shorts (<=30s, max 4) and long videos (30s-25min, max 2). Call again to advance; the final call returns the complete aggregated report. Calling with a fresh topic after completion starts a new research.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ResearchInput) (*mcp.CallToolResult, any, error) {
		// An in-flight research wins: the call advances it by one query and
		// the caller-supplied topic/queries are ignored until it finishes.
		if session.Active() {
			return report(session.Continue(ctx))
		}

		queries, err := validateInput(input)
		if err != nil {
			return nil, nil, err
		}
		return report(session.Start(ctx, strings.TrimSpace(input.Topic), queries))
	})
}

// validateInput enforces the tool boundary: non-blank topic and 2-4
// non-blank query strings. Returns the trimmed query list.
func validateInput(input engine.ResearchInput) ([]string, error) {
	if strings.TrimSpace(input.Topic) == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if len(input.Queries) < minQueries || len(input.Queries) > maxQueries {
		return nil, fmt.Errorf("queries must contain %d-%d entries, got %d", minQueries, maxQueries, len(input.Queries))
	}
	queries := make([]string, len(input.Queries))
	for i, q := range input.Queries {
		q = strings.TrimSpace(q)
		if q == "" {
			return nil, fmt.Errorf("queries[%d] is empty", i)
		}
		queries[i] = q
	}
	return queries, nil
}

// report converts a session outcome into the serialized response envelope.
// Failures become {status:"failed", error} results flagged IsError rather
// than handler errors, so the session's own state handling stays visible to
// the caller.
func report(out research.Outcome) (*mcp.CallToolResult, any, error) {
	switch {
	case out.Err != nil:
		return toolutil.FailureResult(out.Err.Error()), nil, nil
	case out.Final != nil:
		res, err := toolutil.JSONResult(out.Final)
		return res, nil, err
	default:
		res, err := toolutil.JSONResult(out.Step)
		return res, nil, err
	}
}
