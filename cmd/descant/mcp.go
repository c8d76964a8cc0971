package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/descant/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts descant as an MCP Server over stdio.
This allows AI agents (like Claude Desktop) to request counterpoint as a tool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := appLogger(cmd)

		// Ensure logs don't corrupt JSON-RPC on Stdout.
		log.SetOutput(os.Stderr)

		srv := mcp.NewServer(logger)
		logger.Info("starting descant MCP server (stdio)")
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
