package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bordermap/internal/adapters/driving/mcp"
	"github.com/custodia-labs/bordermap/internal/core/domain"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Serve the --file map to AI assistants over the Model Context Protocol.

Tools edit the map and save it; resources under bordermap:// read it.
A missing file is created on the first save.
The server communicates over stdio by default. Use --port to serve HTTP
instead, for example to test with the MCP Inspector.

Examples:
  bordermap -f world.xml mcp serve
  bordermap -f world.xml mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if err := openMap(cmd); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		documentService.SetFileName(mapFile)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Document: documentService,
		Settings: settingsService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
