package main

import (
	"github.com/spf13/cobra"

	chainz "github.com/kje7713-dev/Grappling-Chainz"
	"github.com/kje7713-dev/Grappling-Chainz/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive drill-through session",
	Long:  `Starts an interactive session that walks the position graph from the chosen starting position.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := gatherRunOptions(cmd)
		if err != nil {
			return err
		}
		return cli.RunSession(opts)
	},
}

func gatherRunOptions(cmd *cobra.Command) (cli.RunOptions, error) {
	start, err := cmd.Flags().GetString("start")
	if err != nil {
		// Commands without the flag (graph, serve, mcp) use the default.
		start = chainz.DefaultStartPosition
	}
	curriculumPath, _ := cmd.Flags().GetString("curriculum")
	headless, _ := cmd.Flags().GetBool("headless")
	debug, _ := cmd.Flags().GetBool("debug")

	return cli.RunOptions{
		Start:          start,
		CurriculumPath: curriculumPath,
		Headless:       headless,
		Debug:          debug,
	}, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("start", chainz.DefaultStartPosition, "Starting position ID")
	runCmd.Flags().Bool("headless", false, "Run without banner, renderer, or continue prompts")

	// Make 'run' the default when no subcommand is given.
	rootCmd.RunE = runCmd.RunE
}
