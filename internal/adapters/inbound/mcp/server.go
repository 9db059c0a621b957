package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/csfix/csfix/internal/domain"
)

// NewServer creates an MCP server with the csfix tools registered. The
// projectPath is the default target for fix runs.
func NewServer(projectPath string, cat *domain.Catalog) *server.MCPServer {
	s := server.NewMCPServer(
		"csfix",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath, cat)

	return s
}
