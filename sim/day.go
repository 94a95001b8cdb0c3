package sim

import (
	"fmt"

	"github.com/katalvlaran/sirsim/agent"
	"github.com/katalvlaran/sirsim/rng"
)

// Stage names a point in the daily pipeline.
type Stage int

const (
	// StageSeed is the day-0 state right after seeding. It is never run by Step.
	StageSeed Stage = iota
	// StageMonitor advances infection day counts and recovers expired cases.
	StageMonitor
	// StageMove relocates agents according to Params.Movement.
	StageMove
	// StageInfect applies the infection scan.
	StageInfect
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageSeed:
		return "seed"
	case StageMonitor:
		return "monitor"
	case StageMove:
		return "move"
	case StageInfect:
		return "infect"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// StepReport summarizes one simulated day.
type StepReport struct {
	Day           int
	Recovered     int // agents that left Infectious in Monitor
	Moved         int // agents relocated in Move
	NewlyInfected int // agents that entered Infectious in Infect
	Counts        Counts
}

// stage is one entry of the day pipeline.
type stage struct {
	name Stage
	run  func(s *Simulation, rep *StepReport) error
}

// pipeline is the only definition of a day. Recovery is decided on
// start-of-day state, movement changes exposure, and infection uses the
// post-move positions with the pre-scan state set.
var pipeline = [...]stage{
	{StageMonitor, (*Simulation).monitor},
	{StageMove, (*Simulation).move},
	{StageInfect, (*Simulation).infect},
}

// Pipeline returns the stages of a day in execution order.
func Pipeline() []Stage {
	out := make([]Stage, len(pipeline))
	for i, st := range pipeline {
		out[i] = st.name
	}

	return out
}

// monitor increments the day count of every Infectious agent and recovers
// those whose count now exceeds DaysToRecover.
// Complexity: O(n).
func (s *Simulation) monitor(rep *StepReport) error {
	for _, i := range s.pool.Indices(agent.Infectious) {
		d, err := s.pool.Tick(i)
		if err != nil {
			return err
		}
		if d > s.params.DaysToRecover {
			if err = s.pool.Recover(i); err != nil {
				return err
			}
			rep.Recovered++
		}
	}

	return nil
}

// move draws a new uniform position, x then y in index order, for every agent
// the movement policy relocates.
// Complexity: O(n).
func (s *Simulation) move(rep *StepReport) error {
	states := s.pool.States()
	for i, st := range states {
		if st == agent.Infectious && s.params.Movement != MoveAll {
			continue
		}
		x, y := rng.Point(s.rng)
		if err := s.pool.Relocate(i, agent.Point{X: x, Y: y}); err != nil {
			return err
		}
		rep.Moved++
	}

	return nil
}

// infect runs the scanner on the current pool and applies the whole result.
// The scanner reads a snapshot, so no target is promoted before the set is final.
func (s *Simulation) infect(rep *StepReport) error {
	targets, err := s.scanner.Scan(s.pool, s.params.Radius)
	if err != nil {
		return err
	}
	for _, i := range targets {
		if err = s.pool.Infect(i); err != nil {
			return err
		}
	}
	rep.NewlyInfected = len(targets)

	return nil
}
