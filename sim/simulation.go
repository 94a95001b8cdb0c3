package sim

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/sirsim/agent"
	"github.com/katalvlaran/sirsim/rng"
	"github.com/katalvlaran/sirsim/scan"
)

// StopReason explains why Run returned.
type StopReason int

const (
	// StopExtinct means no agent is Infectious.
	StopExtinct StopReason = iota
	// StopMaxDays means Params.MaxDays days were simulated.
	StopMaxDays
	// StopCancelled means the context was done between two days.
	StopCancelled
	// StopFailed means a step returned an invariant violation.
	StopFailed
)

// String returns the reason name.
func (r StopReason) String() string {
	switch r {
	case StopExtinct:
		return "extinct"
	case StopMaxDays:
		return "max-days"
	case StopCancelled:
		return "cancelled"
	case StopFailed:
		return "failed"
	default:
		return fmt.Sprintf("stop(%d)", int(r))
	}
}

// Result is the outcome of Run.
type Result struct {
	Days       int
	Final      Counts
	Series     []Entry
	StopReason StopReason
}

// Simulation owns one run: the pool, the shared generator and the history.
type Simulation struct {
	params    Params
	pool      *agent.Pool
	rng       *rand.Rand
	scanner   scan.Scanner
	observers []Observer
	logger    *zap.Logger

	day    int
	series TimeSeries
	err    error
}

// New validates params, creates and seeds the population, and records day 0.
// Configuration errors are returned before any state exists.
//
// Draw order on the shared generator: placement, infectious sample,
// recovered sample. Without WithSeed or WithRand the rng.DefaultSeed stream is used.
func New(params Params, opts ...Option) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := rng.OrDefault(cfg.rng)

	pool, err := agent.NewPool(params.Population(), r)
	if err != nil {
		return nil, err
	}
	if err = pool.Seed(params.Infectious, params.Recovered, r); err != nil {
		return nil, err
	}

	s := &Simulation{
		params:    params,
		pool:      pool,
		rng:       r,
		scanner:   cfg.scanner,
		observers: cfg.observers,
		logger:    cfg.logger,
	}
	counts, err := s.count()
	if err != nil {
		return nil, err
	}
	if err = s.series.Record(0, counts); err != nil {
		return nil, err
	}
	s.logger.Info("simulation seeded",
		zap.Int("population", params.Population()),
		zap.Int("susceptible", counts.S),
		zap.Int("infectious", counts.I),
		zap.Int("recovered", counts.R),
		zap.Float64("radius", params.Radius),
		zap.Int("days_to_recover", params.DaysToRecover),
		zap.Int("max_days", params.MaxDays),
		zap.Stringer("movement", params.Movement),
	)
	s.notify(0, StageSeed, counts)

	return s, nil
}

// Step simulates the next day: Monitor, Move, Infect, then counting and
// recording. After an error the Simulation is unusable and Step keeps
// returning that error.
func (s *Simulation) Step() (StepReport, error) {
	if s.err != nil {
		return StepReport{}, s.err
	}
	day := s.day + 1
	rep := StepReport{Day: day}
	for _, st := range pipeline {
		if err := st.run(s, &rep); err != nil {
			return rep, s.fail(fmt.Errorf("sim: day %d %s: %w", day, st.name, err))
		}
		if len(s.observers) > 0 {
			c, err := s.count()
			if err != nil {
				return rep, s.fail(fmt.Errorf("sim: day %d %s: %w", day, st.name, err))
			}
			s.notify(day, st.name, c)
		}
	}

	counts, err := s.count()
	if err != nil {
		return rep, s.fail(fmt.Errorf("sim: day %d: %w", day, err))
	}
	if err = s.series.Record(day, counts); err != nil {
		return rep, s.fail(err)
	}
	s.day = day
	rep.Counts = counts

	s.logger.Debug("day complete",
		zap.Int("day", day),
		zap.Int("susceptible", counts.S),
		zap.Int("infectious", counts.I),
		zap.Int("recovered", counts.R),
		zap.Int("newly_infected", rep.NewlyInfected),
		zap.Int("newly_recovered", rep.Recovered),
	)

	return rep, nil
}

// Run steps until no agent is Infectious, MaxDays is reached, or ctx is done.
// ctx is only consulted between days; a day is never interrupted.
// On cancellation the partial Result is returned with ctx.Err().
func (s *Simulation) Run(ctx context.Context) (Result, error) {
	var reason StopReason
	var runErr error
	for {
		if ShouldStop(s.Counts()) {
			reason = StopExtinct
			break
		}
		if s.day >= s.params.MaxDays {
			reason = StopMaxDays
			break
		}
		if err := ctx.Err(); err != nil {
			reason, runErr = StopCancelled, err
			break
		}
		if _, err := s.Step(); err != nil {
			reason, runErr = StopFailed, err
			break
		}
	}

	res := Result{
		Days:       s.day,
		Final:      s.Counts(),
		Series:     s.series.Entries(),
		StopReason: reason,
	}
	if runErr != nil && reason == StopFailed {
		s.logger.Error("simulation failed", zap.Int("day", s.day), zap.Error(runErr))
	} else {
		s.logger.Info("simulation stopped",
			zap.Int("days", res.Days),
			zap.Stringer("reason", reason),
			zap.Int("susceptible", res.Final.S),
			zap.Int("infectious", res.Final.I),
			zap.Int("recovered", res.Final.R),
		)
	}

	return res, runErr
}

// Day returns the index of the last completed day (0 before the first Step).
func (s *Simulation) Day() int {
	return s.day
}

// Params returns the validated parameters of the run.
func (s *Simulation) Params() Params {
	return s.params
}

// Counts returns the counts recorded for the last completed day.
func (s *Simulation) Counts() Counts {
	e, _ := s.series.Last()

	return e.Counts
}

// Series returns a copy of the time series recorded so far.
func (s *Simulation) Series() []Entry {
	return s.series.Entries()
}

// Snapshot returns the current (position, state) view of every agent.
func (s *Simulation) Snapshot() []agent.Snapshot {
	return s.pool.Snapshot()
}

// count recounts the pool and checks it against the fixed population.
func (s *Simulation) count() (Counts, error) {
	c, err := Count(s.pool)
	if err != nil {
		return c, err
	}
	if c.Total() != s.params.Population() {
		return c, fmt.Errorf("%w: %w: %+v for population %d",
			ErrInvariantViolation, ErrConservation, c, s.params.Population())
	}

	return c, nil
}

// notify hands a frame to every observer. Observer errors are logged only.
func (s *Simulation) notify(day int, st Stage, c Counts) {
	if len(s.observers) == 0 {
		return
	}
	f := Frame{Day: day, Stage: st, Agents: s.pool.Snapshot(), Counts: c}
	for _, o := range s.observers {
		if err := o.Observe(f); err != nil {
			s.logger.Warn("observer failed",
				zap.Int("day", day),
				zap.Stringer("stage", st),
				zap.Error(err),
			)
		}
	}
}

func (s *Simulation) fail(err error) error {
	s.err = err

	return err
}
