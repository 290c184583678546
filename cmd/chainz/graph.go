package main

import (
	"github.com/spf13/cobra"

	"github.com/kje7713-dev/Grappling-Chainz/internal/cli"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the position catalog",
	Long:  `Prints every position in the curriculum with its coaching notes and default drills.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := gatherRunOptions(cmd)
		if err != nil {
			return err
		}
		return cli.ShowCatalog(opts)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
