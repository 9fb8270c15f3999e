package main

import (
	"fmt"
	"os"

	"github.com/iwvelando/premium-estimator/pkg/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configLocation string
	logLevel       string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "premium-estimator",
		Short:         "Estimate homeowners insurance premiums from common rating factors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env is normal; values already in the environment win.
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(
		newEstimateCmd(opts),
		newCoverageCmd(),
		newOptionsCmd(),
		newServeCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
}
