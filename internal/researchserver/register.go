// Package researchserver wires the research session into the MCP server.
package researchserver

import (
	"github.com/anatolykoptev/go_ytresearch/internal/engine/research"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers the research tools on the given MCP server:
// youtube-research.
func RegisterTools(server *mcp.Server, session *research.Session) {
	registerYouTubeResearch(server, session)
}
