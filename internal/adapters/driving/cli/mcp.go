package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can read
the guide's topics and use its assistant, search and quiz tools.

By default, the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP at /mcp instead, with a liveness
probe at /healthz. HTTP binds to localhost unless --host says otherwise.

Examples:
  # Stdio mode (default)
  lmsguide mcp serve

  # HTTP mode (for MCP Inspector)
  lmsguide mcp serve --port 8080

  # HTTP on every interface, for a shared training-room machine
  lmsguide mcp serve --port 8080 --host 0.0.0.0

Client configuration:
  {
    "mcpServers": {
      "lmsguide": {
        "command": "/path/to/lmsguide",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().String("host", "127.0.0.1", "HTTP bind address")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	host, err := cmd.Flags().GetString("host")
	if err != nil {
		return fmt.Errorf("getting host flag: %w", err)
	}
	if catalogService == nil {
		return fmt.Errorf("mcp: %w", ErrNotConfigured)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Catalog:   catalogService,
		Assistant: assistantService,
		Search:    searchService,
		Quiz:      quizService,
		Progress:  progressService,
	}, mcp.WithVersion(version))
	if err != nil {
		return err
	}

	if port > 0 {
		addr := net.JoinHostPort(host, strconv.Itoa(port))
		cmd.PrintErrf("MCP server listening on http://%s/mcp\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
