package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sirsim/config"
	"github.com/katalvlaran/sirsim/sim"
)

func smallConfig(dir string) *config.Config {
	c := config.Default()
	c.Population = config.PopulationConfig{Susceptible: 40, Infectious: 2}
	c.Disease.InfectiousRadius = 0.2
	c.Disease.DaysToRecover = 2
	c.Run.MaxDays = 4
	c.Run.Seed = 11
	c.Output.Dir = dir
	c.Output.ImageSize = 200
	return c
}

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("stat %s: %v", path, err)
	}
	return err == nil
}

func TestRunSimulation_Artifacts(t *testing.T) {
	dir := t.TempDir()
	c := smallConfig(dir)
	c.Output.Render = true
	c.Output.Trend = true
	c.Output.TrendCSV = true
	c.Output.Animation = true

	var out bytes.Buffer
	res, err := runSimulation(context.Background(), c, zap.NewNop(), &out)
	if err != nil {
		t.Fatalf("runSimulation failed: %v", err)
	}
	if res.Final.Total() != 42 {
		t.Errorf("final total = %d, want 42", res.Final.Total())
	}
	if len(res.Series) != res.Days+1 {
		t.Errorf("series length %d for %d days", len(res.Series), res.Days)
	}

	for _, name := range []string{"SIR1.png", "SIR_Trend1.png", "SIR_Animation1.gif"} {
		if !exists(t, filepath.Join(dir, name)) {
			t.Errorf("%s was not written", name)
		}
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if lines[0] != "day,susceptible,infectious,recovered" {
		t.Errorf("unexpected csv header %q", lines[0])
	}
	if len(lines) != len(res.Series)+1 {
		t.Errorf("csv has %d rows, want %d", len(lines)-1, len(res.Series))
	}
}

func TestRunSimulation_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	c := smallConfig(dir)
	c.Output.Trend = true

	for i := 0; i < 2; i++ {
		if _, err := runSimulation(context.Background(), c, zap.NewNop(), &bytes.Buffer{}); err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
	}
	if !exists(t, filepath.Join(dir, "SIR_Trend1.png")) || !exists(t, filepath.Join(dir, "SIR_Trend2.png")) {
		t.Error("expected SIR_Trend1.png and SIR_Trend2.png")
	}
	if exists(t, filepath.Join(dir, "SIR1.png")) {
		t.Error("scatter frames written although render is off")
	}
}

func TestRunSimulation_InvalidConfig(t *testing.T) {
	c := smallConfig(t.TempDir())
	c.Population.Infectious = -1

	_, err := runSimulation(context.Background(), c, zap.NewNop(), &bytes.Buffer{})
	if !errors.Is(err, sim.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestRunSimulation_Cancelled(t *testing.T) {
	c := smallConfig(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := runSimulation(ctx, c, zap.NewNop(), &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.StopReason != sim.StopCancelled || res.Days != 0 {
		t.Errorf("got reason %v after %d days", res.StopReason, res.Days)
	}
}

func TestBuildLogger(t *testing.T) {
	l, err := buildLogger(config.LoggingConfig{Level: "warn", Format: "json"}, false)
	if err != nil {
		t.Fatalf("buildLogger failed: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}

	l, err = buildLogger(config.LoggingConfig{Level: "warn", Format: "console"}, true)
	if err != nil {
		t.Fatalf("buildLogger failed: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose should enable debug")
	}

	if _, err := buildLogger(config.LoggingConfig{Level: "loud", Format: "json"}, false); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestCommands_InitThenRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sirsim.yaml")
	outDir := filepath.Join(dir, "out")
	defer func() { configPath, verbose = "sirsim.yaml", false }()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !exists(t, path) {
		t.Fatal("config file was not written")
	}

	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	if err := rootCmd.Execute(); err == nil {
		t.Error("config init should refuse to overwrite")
	}

	out.Reset()
	rootCmd.SetArgs([]string{"run", "--config", path,
		"--susceptible", "30", "--radius", "0.1", "--max-days", "3",
		"--trend", "--out", outDir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Stopped after") {
		t.Errorf("missing summary in output: %q", out.String())
	}
	if !exists(t, filepath.Join(outDir, "SIR_Trend1.png")) {
		t.Error("trend chart was not written")
	}
}
