package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chainz",
	Short: "Grappling Chainz is a drill-through narrative trainer",
	Long: `Grappling Chainz walks you through a graph of grappling positions.
Pick actions, explore opponent reactions, and earn drill prescriptions
to improve your game.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("curriculum", "", "Path to a curriculum YAML file (default: bundled curriculum)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}
