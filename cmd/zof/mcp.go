package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/zofmath/zof/internal/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the solver as an MCP server over stdio, so AI agents can
call solve_root and list_methods as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		// Logs must not corrupt JSON-RPC on stdout.
		log.SetOutput(os.Stderr)
		logger.Info("starting MCP server (stdio)")

		return mcp.NewServer().ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
