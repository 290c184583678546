package main

import (
	"github.com/spf13/cobra"

	"github.com/kje7713-dev/Grappling-Chainz/internal/cli"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the engine over the Model Context Protocol (stdio)",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := gatherRunOptions(cmd)
		if err != nil {
			return err
		}
		return cli.RunMCP(opts)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
