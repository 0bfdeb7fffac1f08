package cli

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/scipdup/internal/mcp"
)

// NewServeCmd creates the "serve" command, which runs the MCP server on
// stdio.
func NewServeCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the collision analyzer as an MCP server on stdio",
		Long: `Serve exposes the analyzer over the Model Context Protocol. Tools:
analyze_index runs the two-pass analysis on one index file; list_runs lists
saved runs from the history database.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Stdout is reserved for the MCP protocol
			log.SetOutput(os.Stderr)
			log.Printf("scipdup MCP server v%s starting...", mcp.ServerVersion)

			server, err := mcp.NewServer(dbPath)
			if err != nil {
				return err
			}

			log.Println("MCP server ready, listening on stdio...")
			return server.Serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "",
		"history database directory (default ~/.scipdup)")

	return cmd
}
