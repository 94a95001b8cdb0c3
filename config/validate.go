package config

import (
	"fmt"
	"math"

	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sirsim/agent"
	"github.com/katalvlaran/sirsim/render"
	"github.com/katalvlaran/sirsim/scan"
	"github.com/katalvlaran/sirsim/sim"
)

// Validate checks every section and returns the first violation, wrapped in
// agent.ErrConfiguration and ErrInvalidConfig.
//
// Stages:
//  1. Population and disease values (the core configuration surface).
//  2. Loop and engine choices.
//  3. Output and logging.
func (c *Config) Validate() error {
	p := c.Population
	if p.Susceptible < 0 || p.Infectious < 0 || p.Recovered < 0 {
		return invalidf("population counts must be non-negative: %+v", p)
	}
	if p.Susceptible+p.Infectious+p.Recovered <= 0 {
		return invalidf("population must be positive")
	}
	r := c.Disease.InfectiousRadius
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return invalidf("infectious_radius must be a positive number: %v", r)
	}
	if c.Disease.DaysToRecover <= 0 {
		return invalidf("days_to_recover must be positive: %d", c.Disease.DaysToRecover)
	}

	if c.Run.MaxDays <= 0 {
		return invalidf("max_days must be positive: %d", c.Run.MaxDays)
	}
	if _, err := sim.ParseMovement(c.Run.Movement); err != nil {
		return invalidf("movement %q", c.Run.Movement)
	}
	if c.Run.Workers < 0 {
		return invalidf("workers must be non-negative: %d", c.Run.Workers)
	}
	if _, err := scan.ByName(scan.Kind(c.Run.Scanner), c.Run.Workers); err != nil {
		return invalidf("scanner %q", c.Run.Scanner)
	}

	if (c.Output.Render || c.Output.Trend || c.Output.Animation) && c.Output.ImageSize < render.MinSize {
		return invalidf("image_size must be at least %d: %d", render.MinSize, c.Output.ImageSize)
	}
	for _, name := range c.Output.RenderStages {
		if _, err := ParseStage(name); err != nil {
			return err
		}
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return invalidf("logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return invalidf("logging format %q", c.Logging.Format)
	}

	return nil
}

// Params converts the validated configuration into simulation parameters.
func (c *Config) Params() (sim.Params, error) {
	if err := c.Validate(); err != nil {
		return sim.Params{}, err
	}
	mv, err := sim.ParseMovement(c.Run.Movement)
	if err != nil {
		return sim.Params{}, err
	}

	return sim.Params{
		Susceptible:   c.Population.Susceptible,
		Infectious:    c.Population.Infectious,
		Recovered:     c.Population.Recovered,
		Radius:        c.Disease.InfectiousRadius,
		DaysToRecover: c.Disease.DaysToRecover,
		MaxDays:       c.Run.MaxDays,
		Movement:      mv,
	}, nil
}

// Scanner builds the configured infection scanner.
func (c *Config) Scanner() (scan.Scanner, error) {
	return scan.ByName(scan.Kind(c.Run.Scanner), c.Run.Workers)
}

// Stages resolves Output.RenderStages.
func (c *Config) Stages() ([]sim.Stage, error) {
	out := make([]sim.Stage, 0, len(c.Output.RenderStages))
	for _, name := range c.Output.RenderStages {
		st, err := ParseStage(name)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}

	return out, nil
}

// ParseStage maps a stage name to a sim.Stage.
func ParseStage(name string) (sim.Stage, error) {
	for _, st := range []sim.Stage{sim.StageSeed, sim.StageMonitor, sim.StageMove, sim.StageInfect} {
		if st.String() == name {
			return st, nil
		}
	}

	return 0, invalidf("render stage %q", name)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", agent.ErrConfiguration, ErrInvalidConfig, fmt.Sprintf(format, args...))
}
