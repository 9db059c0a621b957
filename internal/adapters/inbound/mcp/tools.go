package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/csfix/csfix/internal/adapters/outbound/engine"
	"github.com/csfix/csfix/internal/adapters/outbound/gitinfo"
	"github.com/csfix/csfix/internal/adapters/outbound/hclconfig"
	"github.com/csfix/csfix/internal/application"
	"github.com/csfix/csfix/internal/domain"
)

// registerTools registers all csfix MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, cat *domain.Catalog) {
	s.AddTool(
		mcplib.NewTool("csfix_fix",
			mcplib.WithDescription("Run the coding-standards fixer over the project and return the changed files as JSON"),
			mcplib.WithBoolean("dry_run", mcplib.Description("Report would-be changes without writing files (default true)")),
			mcplib.WithString("config", mcplib.Description("Registered configuration profile name")),
			mcplib.WithString("level", mcplib.Description("Fixer level preset: psr1, psr2 or all")),
			mcplib.WithString("fixers", mcplib.Description("Comma-separated fixer names, overrides level")),
			mcplib.WithString("path", mcplib.Description("Target file or directory (defaults to the project path)")),
		),
		handleFix(projectPath, cat),
	)

	s.AddTool(
		mcplib.NewTool("csfix_list_fixers",
			mcplib.WithDescription("Returns the fixer catalog (name, level, description) as JSON"),
		),
		handleListFixers(cat),
	)

	s.AddTool(
		mcplib.NewTool("csfix_list_configs",
			mcplib.WithDescription("Returns the configuration-profile catalog as JSON"),
		),
		handleListConfigs(cat),
	)
}

func handleFix(projectPath string, cat *domain.Catalog) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path := request.GetString("path", projectPath)

		svc := application.NewFixService(cat, hclconfig.New(cat), engine.New(), gitinfo.New())
		report, err := svc.Fix(path, domain.FixOptions{
			Profile: request.GetString("config", ""),
			Level:   request.GetString("level", ""),
			Fixers:  request.GetString("fixers", ""),
			DryRun:  request.GetBool("dry_run", true),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("fix failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleListFixers(cat *domain.Catalog) server.ToolHandlerFunc {
	type fixerInfo struct {
		Name        string `json:"name"`
		Level       string `json:"level"`
		Description string `json:"description"`
	}
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		fixers := cat.Fixers()
		infos := make([]fixerInfo, 0, len(fixers))
		for _, f := range fixers {
			infos = append(infos, fixerInfo{Name: f.Name, Level: string(f.Level), Description: f.Description})
		}
		return jsonResult(infos)
	}
}

func handleListConfigs(cat *domain.Catalog) server.ToolHandlerFunc {
	type profileInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		profiles := cat.Profiles()
		infos := make([]profileInfo, 0, len(profiles))
		for _, p := range profiles {
			infos = append(infos, profileInfo{Name: p.Name, Description: p.Description})
		}
		return jsonResult(infos)
	}
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcplib.NewToolResultText(string(data)), nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return mcplib.NewToolResultError(msg)
}
