package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifetrace/trajectory/internal/config"
	"github.com/lifetrace/trajectory/internal/domain"
	"github.com/lifetrace/trajectory/internal/output"
	"github.com/lifetrace/trajectory/internal/simulation"
)

// consoleLogger routes engine logging to the standard logger when --verbose
// is set.
type consoleLogger struct{ debug bool }

func (l consoleLogger) Debugf(format string, args ...any) {
	if l.debug {
		log.Printf("DEBUG "+format, args...)
	}
}
func (l consoleLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (l consoleLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (l consoleLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lifesim",
		Short:         "Monte Carlo life-trajectory simulator",
		Long:          "lifesim projects an ensemble of stochastic multi-year life trajectories from a starting state and summarizes the outcomes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSimulateCmd(), newPresetsCmd())
	return root
}

func newSimulateCmd() *cobra.Command {
	var (
		scenarioPath string
		paths        int
		seed         int64
		format       string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scenario file and print the ensemble summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			scenario, err := parser.LoadFromFile(scenarioPath)
			if err != nil {
				return err
			}
			if paths > 0 {
				scenario.EnsembleSize = paths
			}
			if seed != 0 {
				scenario.Seed = seed
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (available: %v)", format, output.FormatNames())
			}

			engine := simulation.NewEngine()
			engine.SetLogger(consoleLogger{debug: verbose})

			result, err := engine.Run(cmd.Context(), *scenario)
			if err != nil {
				return err
			}

			data, err := formatter.Format(result)
			if err != nil {
				return fmt.Errorf("formatting failed: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "path to scenario YAML file (required)")
	cmd.Flags().IntVarP(&paths, "paths", "p", 0, "override ensemble size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override random seed (0 keeps scenario/clock seed)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List starting-state presets with their real-unit figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, preset := range domain.Presets() {
				state, _ := domain.PresetState(preset)
				real := state.ToRealUnits()
				fmt.Fprintf(w, "%-13s liquid=%-12s equity=%-12s net=%-12s body=%s resilience=%s\n",
					preset,
					output.FormatCurrency(real.LiquidWealth),
					output.FormatCurrency(real.Equity),
					output.FormatCurrency(real.NetWorth),
					real.BodyLabel,
					real.ResilienceLabel,
				)
			}
			return nil
		},
	}
}
