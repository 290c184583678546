package main

import (
	"github.com/spf13/cobra"

	"github.com/kje7713-dev/Grappling-Chainz/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the engine over HTTP",
	Long: `Exposes the position graph and drill-through sessions over a JSON HTTP
API, with prometheus metrics on /metrics. The listen address comes from
CHAINZ_ADDR (default :8080) or the --addr flag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := gatherRunOptions(cmd)
		if err != nil {
			return err
		}

		cfg, err := cli.LoadServeConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}

		return cli.RunServe(cfg, opts)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (overrides CHAINZ_ADDR)")
}
