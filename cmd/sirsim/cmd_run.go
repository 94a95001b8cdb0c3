package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sirsim/config"
	"github.com/katalvlaran/sirsim/render"
	"github.com/katalvlaran/sirsim/sim"
)

// Per-run overrides; only flags set on the command line replace file values.
var (
	flagSusceptible int
	flagInfectious  int
	flagRecovered   int
	flagRadius      float64
	flagDays        int
	flagMaxDays     int
	flagSeed        int64
	flagMovement    string
	flagScanner     string
	flagWorkers     int
	flagOutDir      string
	flagRender      bool
	flagTrend       bool
	flagTrendCSV    bool
	flagAnimation   bool
)

// runCmd executes one simulation
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation and write the requested artifacts",
	Long: `Runs the simulation described by --config, with command-line overrides.

Artifacts never overwrite earlier ones: scatter frames are saved as SIR<k>.png,
the trend chart as SIR_Trend<k>.png and the animation as SIR_Animation<k>.gif,
each with the smallest free k.`,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.IntVar(&flagSusceptible, "susceptible", 0, "Initial susceptible agents")
	f.IntVar(&flagInfectious, "infectious", 0, "Initial infectious agents")
	f.IntVar(&flagRecovered, "recovered", 0, "Initial recovered agents")
	f.Float64Var(&flagRadius, "radius", 0, "Infectious radius in unit-square distance")
	f.IntVar(&flagDays, "days-to-recover", 0, "Days an agent stays infectious")
	f.IntVar(&flagMaxDays, "max-days", 0, "Upper bound on simulated days")
	f.Int64Var(&flagSeed, "seed", 0, "Random seed (0 uses the default seed)")
	f.StringVar(&flagMovement, "movement", "", "Who moves each day: non-infectious or all")
	f.StringVar(&flagScanner, "scanner", "", "Infection scanner: brute, grid or parallel")
	f.IntVar(&flagWorkers, "workers", 0, "Workers for the parallel scanner (0 = GOMAXPROCS)")
	f.StringVarP(&flagOutDir, "out", "o", "", "Output directory for artifacts")
	f.BoolVar(&flagRender, "render", false, "Save a scatter PNG for each rendered stage")
	f.BoolVar(&flagTrend, "trend", false, "Save the trend chart PNG")
	f.BoolVar(&flagTrendCSV, "trend-csv", false, "Print the trend as CSV on stdout")
	f.BoolVar(&flagAnimation, "animation", false, "Save a GIF of the rendered stages")
}

// applyRunFlags copies every explicitly set flag into c.
func applyRunFlags(cmd *cobra.Command, c *config.Config) {
	set := cmd.Flags().Changed
	if set("susceptible") {
		c.Population.Susceptible = flagSusceptible
	}
	if set("infectious") {
		c.Population.Infectious = flagInfectious
	}
	if set("recovered") {
		c.Population.Recovered = flagRecovered
	}
	if set("radius") {
		c.Disease.InfectiousRadius = flagRadius
	}
	if set("days-to-recover") {
		c.Disease.DaysToRecover = flagDays
	}
	if set("max-days") {
		c.Run.MaxDays = flagMaxDays
	}
	if set("seed") {
		c.Run.Seed = flagSeed
	}
	if set("movement") {
		c.Run.Movement = flagMovement
	}
	if set("scanner") {
		c.Run.Scanner = flagScanner
	}
	if set("workers") {
		c.Run.Workers = flagWorkers
	}
	if set("out") {
		c.Output.Dir = flagOutDir
	}
	if set("render") {
		c.Output.Render = flagRender
	}
	if set("trend") {
		c.Output.Trend = flagTrend
	}
	if set("trend-csv") {
		c.Output.TrendCSV = flagTrendCSV
	}
	if set("animation") {
		c.Output.Animation = flagAnimation
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	applyRunFlags(cmd, cfg)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := runSimulation(ctx, cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stopped after %d days (%s): S=%d I=%d R=%d\n",
		res.Days, res.StopReason, res.Final.S, res.Final.I, res.Final.R)
	return nil
}

// runSimulation validates c, runs one simulation and writes the artifacts
// selected in c.Output. The trend CSV, when enabled, goes to out.
// A cancelled run still writes its artifacts for the days completed.
func runSimulation(ctx context.Context, c *config.Config, log *zap.Logger, out io.Writer) (sim.Result, error) {
	params, err := c.Params()
	if err != nil {
		return sim.Result{}, err
	}
	scanner, err := c.Scanner()
	if err != nil {
		return sim.Result{}, err
	}
	stages, err := c.Stages()
	if err != nil {
		return sim.Result{}, err
	}

	opts := []sim.Option{
		sim.WithSeed(c.Run.Seed),
		sim.WithScanner(scanner),
		sim.WithLogger(log),
	}
	var frames *render.FrameWriter
	if c.Output.Render {
		frames = &render.FrameWriter{Dir: c.Output.Dir, Size: c.Output.ImageSize, Stages: stages, Logger: log}
		opts = append(opts, sim.WithObserver(frames))
	}
	var anim *render.Animation
	if c.Output.Animation {
		anim = &render.Animation{Size: c.Output.ImageSize, Stages: stages}
		opts = append(opts, sim.WithObserver(anim))
	}

	s, err := sim.New(params, opts...)
	if err != nil {
		return sim.Result{}, err
	}
	log.Info("simulation configured",
		zap.Int("population", params.Population()),
		zap.Float64("radius", params.Radius),
		zap.Int("days_to_recover", params.DaysToRecover),
		zap.Int("max_days", params.MaxDays),
		zap.Stringer("movement", params.Movement),
		zap.String("scanner", c.Run.Scanner),
	)

	res, runErr := s.Run(ctx)
	if res.StopReason == sim.StopFailed {
		return res, runErr
	}

	if c.Output.Trend {
		p, err := render.Trend(res.Series)
		if err != nil {
			return res, err
		}
		path, err := render.SavePNG(c.Output.Dir, render.TrendPrefix, p, c.Output.ImageSize)
		if err != nil {
			return res, err
		}
		log.Info("trend written", zap.String("path", path))
	}
	if c.Output.TrendCSV {
		if err := render.WriteTrendCSV(out, res.Series); err != nil {
			return res, err
		}
	}
	if anim != nil && anim.Len() > 0 {
		if err := saveAnimation(c.Output.Dir, anim); err != nil {
			return res, err
		}
	}
	if frames != nil {
		log.Info("frames written", zap.Int("count", len(frames.Written())))
	}

	return res, runErr
}

func saveAnimation(dir string, anim *render.Animation) error {
	f, err := render.CreateUnique(dir, render.AnimationPrefix, ".gif")
	if err != nil {
		return err
	}
	if err := anim.Encode(f, 5); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode animation: %w", err)
	}
	return f.Close()
}
