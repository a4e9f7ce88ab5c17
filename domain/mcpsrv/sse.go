package mcpsrv

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewSSEServer wraps the MCP server in mcp-go's SSE transport. The HTTP
// server mounts SSEHandler at /sse and MessageHandler at /message;
// per-connection streaming sessions are handled inside mcp-go.
func NewSSEServer(s *Server) *server.SSEServer {
	return server.NewSSEServer(s.MCP(),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
	)
}
