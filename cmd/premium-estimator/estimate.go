package main

import (
	"fmt"
	"io"

	"github.com/iwvelando/premium-estimator/internal/config"
	"github.com/iwvelando/premium-estimator/internal/logging"
	"github.com/iwvelando/premium-estimator/internal/quote"
	"github.com/iwvelando/premium-estimator/pkg/constants"
	"github.com/iwvelando/premium-estimator/pkg/output"
	"github.com/iwvelando/premium-estimator/pkg/premium"
	"github.com/iwvelando/premium-estimator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var inputFlags = []string{"home-value", "state", "home-type", "coverage", "deductible"}

type estimateOptions struct {
	homeValue    string
	state        string
	homeType     string
	coverage     string
	deductible   string
	outputFormat string
}

func newEstimateCmd(root *rootOptions) *cobra.Command {
	defaults := premium.DefaultInput()
	opts := &estimateOptions{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Price the quotes in the configuration file, or one ad hoc quote given by flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.homeValue, "home-value", fmt.Sprint(defaults.HomeValue), "home value in dollars")
	flags.StringVar(&opts.state, "state", string(defaults.State), "two-letter state code")
	flags.StringVar(&opts.homeType, "home-type", string(defaults.HomeType), "single-family, condo, townhouse or mobile")
	flags.StringVar(&opts.coverage, "coverage", string(defaults.CoverageLevel), "basic, standard or premium")
	flags.StringVar(&opts.deductible, "deductible", fmt.Sprint(int(defaults.Deductible)), "500, 1000, 2500 or 5000")
	flags.StringVar(&opts.outputFormat, "output-format", "", "type of output override: pretty, csv, json")

	return cmd
}

func runEstimate(cmd *cobra.Command, root *rootOptions, opts *estimateOptions) error {
	adHoc := false
	for _, name := range inputFlags {
		if cmd.Flags().Changed(name) {
			adHoc = true
			break
		}
	}

	// Ad hoc quotes only read the configuration file when it is named explicitly.
	conf := &config.Configuration{}
	if !adHoc || cmd.Flags().Changed("config") {
		loaded, err := config.LoadConfiguration(root.configLocation)
		if err != nil {
			return fmt.Errorf("failed to load configuration at %s: %w", root.configLocation, err)
		}
		conf = loaded
	}
	if adHoc {
		conf.Quotes = []config.Quote{{
			Name:          "ad hoc",
			Active:        true,
			HomeValue:     premium.ParseHomeValue(opts.homeValue),
			State:         opts.state,
			HomeType:      opts.homeType,
			CoverageLevel: opts.coverage,
			Deductible:    opts.deductible,
		}}
	}

	logger, err := logging.NewLogger(conf.Logging, root.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.runEstimate"),
		)
	}

	results, err := quote.GetQuotes(logger, *conf)
	if err != nil {
		logger.Error("failed to price quotes",
			zap.String("op", "main.runEstimate"),
			zap.Error(err),
		)
		return err
	}

	return writeResults(cmd.OutOrStdout(), outputFormat, results)
}

func writeResults(w io.Writer, outputFormat string, results []quote.Result) error {
	switch outputFormat {
	case constants.OutputFormatCSV:
		return output.CsvFormat(w, results)
	case constants.OutputFormatJSON:
		return output.JSONFormat(w, results)
	default:
		return output.PrettyFormat(w, results)
	}
}
