package main

import (
	"fmt"
	"strings"

	chainz "github.com/kje7713-dev/Grappling-Chainz"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of chainz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chainz version %s\n", strings.TrimSpace(chainz.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
