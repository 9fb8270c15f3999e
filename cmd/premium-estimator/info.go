package main

import (
	"fmt"
	"strings"

	"github.com/iwvelando/premium-estimator/pkg/format"
	"github.com/iwvelando/premium-estimator/pkg/output"
	"github.com/iwvelando/premium-estimator/pkg/premium"
	"github.com/spf13/cobra"
)

func newCoverageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coverage [level]",
		Short: "Show the coverage summary and details for one or every coverage level",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := premium.CoverageLevels()
			if len(args) == 1 {
				level, err := premium.ParseCoverageLevel(args[0])
				if err != nil {
					return err
				}
				levels = []premium.CoverageLevel{level}
			}

			w := cmd.OutOrStdout()
			for i, level := range levels {
				if i > 0 {
					if _, err := fmt.Fprintln(w); err != nil {
						return err
					}
				}
				if err := output.CoverageFormat(w, level); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the accepted values for every rating factor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			states := make([]string, 0, len(premium.States()))
			for _, state := range premium.States() {
				states = append(states, string(state))
			}

			lines := []string{
				fmt.Sprintf("States:          %s", strings.Join(states, " ")),
				"Home types:",
			}
			for _, homeType := range premium.HomeTypes() {
				lines = append(lines, fmt.Sprintf("  %-16s %s", homeType, homeType.Label()))
			}
			lines = append(lines, "Coverage levels:")
			for _, level := range premium.CoverageLevels() {
				lines = append(lines, fmt.Sprintf("  %-16s %s", level, level.Label()))
			}
			lines = append(lines, "Deductibles:")
			for _, deductible := range premium.Deductibles() {
				lines = append(lines, fmt.Sprintf("  %-16d %s", int(deductible), deductible.Label()))
			}
			defaults := premium.DefaultInput()
			lines = append(lines, fmt.Sprintf("Defaults:        %s, %s, %s, %s, %s deductible",
				format.Dollars(defaults.HomeValue), defaults.State, defaults.HomeType.Label(),
				defaults.CoverageLevel.Label(), defaults.Deductible.Label()))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}
