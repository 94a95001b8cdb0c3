// Package main is the sirsim command line: it loads a run configuration,
// drives the simulation and writes the requested artifacts.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sirsim/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Shared state set up by PersistentPreRunE
	logger *zap.Logger
	cfg    *config.Config
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "sirsim",
	Short: "Agent-based SIR epidemic simulator",
	Long: `sirsim places a population of agents in the unit square and runs the
daily susceptible → infectious → recovered cycle:
  1. Monitor: infectious agents count their days and recover when done
  2. Move: non-infectious agents jump to a new random position
  3. Infect: susceptible agents within the radius of an infectious one are infected

The run stops when nobody is infectious or after max_days.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err = buildLogger(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logger.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "sirsim.yaml", "Path to the YAML configuration")

	rootCmd.AddCommand(runCmd, configCmd)
}

// buildLogger turns the logging section into a zap logger.
// verbose forces the debug level.
func buildLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = lc.Format
	if lc.Format == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
