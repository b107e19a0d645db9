// cmd/root.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iontreephaser/dephase/config"
)

var (
	logLevel   string
	traceFile  string
	cf, ie, dr float64
	maxFlows   int
	configPath string
	presetName string
)

var rootCmd = &cobra.Command{
	Use:   "dephase",
	Short: "Dephasing basecaller core for a single sequencing well",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if presetName != "" {
			applyPreset()
		}
	},
}

// applyPreset loads --config and overrides cf/ie/dr from the named preset,
// fataling on any lookup or parse failure so a typo'd --preset never
// silently falls back to the zero-error model.
func applyPreset() {
	if configPath == "" {
		logrus.Fatalf("--preset requires --config")
	}
	cat, err := config.Load(configPath)
	if err != nil {
		logrus.Fatal(err)
	}
	preset, ok := cat.Preset(presetName)
	if !ok {
		logrus.Fatalf("no preset named %q in %s", presetName, configPath)
	}
	cf, ie, dr = float64(preset.CF), float64(preset.IE), float64(preset.DR)
	logrus.Debugf("applied preset %q: cf=%g ie=%g dr=%g", presetName, cf, ie, dr)
}

// Execute runs the root command; it is the sole export main.go calls.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&traceFile, "trace", "", "Path to a well-trace JSON file (required)")
	rootCmd.PersistentFlags().Float64Var(&cf, "cf", 0, "Carry-forward rate")
	rootCmd.PersistentFlags().Float64Var(&ie, "ie", 0, "Incomplete-extension rate")
	rootCmd.PersistentFlags().Float64Var(&dr, "dr", 0, "Droop rate")
	rootCmd.PersistentFlags().IntVar(&maxFlows, "max-flows", 0, "Number of flows to process (0 = all flows in the trace)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a presets YAML catalog")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "Named (cf,ie,dr) preset from --config, overriding --cf/--ie/--dr")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(normalizeAndSolveCmd)
	rootCmd.AddCommand(queryStateCmd)
}

func requireTraceFile() {
	if traceFile == "" {
		logrus.Fatalf("--trace is required")
	}
}

func resolvedMaxFlows(numFlows int) int {
	if maxFlows <= 0 || maxFlows > numFlows {
		return numFlows
	}
	return maxFlows
}
