// Package toolutil provides shared helpers for MCP tool handlers.
package toolutil

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// JSONResult marshals v into a text-content tool result.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}

// failureEnvelope is the wire shape of a failed operation.
type failureEnvelope struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// FailureResult builds the {status:"failed", error} envelope, flagged as an
// error response to the hosting layer.
func FailureResult(msg string) *mcp.CallToolResult {
	data, _ := json.Marshal(failureEnvelope{Status: "failed", Error: msg})
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}
