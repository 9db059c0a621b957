package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/csfix/csfix/internal/adapters/inbound/mcp"
	"github.com/csfix/csfix/internal/domain"
)

func newMCPCmd(cat *domain.Catalog) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the csfix MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(cat))
	return cmd
}

func newMCPServeCmd(cat *domain.Catalog) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the csfix MCP server (stdio)",
		Long:  "Start the csfix MCP server using stdio transport, exposing fix runs and the fixer catalog to AI coding assistants.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			s := mcpadapter.NewServer(projectPath, cat)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
