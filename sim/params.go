package sim

import (
	"fmt"
	"math"
)

// Movement selects who relocates during the Move stage.
type Movement int

const (
	// MoveNonInfectious relocates every agent except Infectious ones, which
	// stay put to model reduced mobility of symptomatic individuals.
	MoveNonInfectious Movement = iota
	// MoveAll relocates every agent.
	MoveAll
)

// String returns the configuration name of m.
func (m Movement) String() string {
	switch m {
	case MoveNonInfectious:
		return "non-infectious"
	case MoveAll:
		return "all"
	default:
		return fmt.Sprintf("movement(%d)", int(m))
	}
}

// Params is the configuration surface consumed by the simulation.
type Params struct {
	// Initial compartment sizes; the population is their sum.
	Susceptible int
	Infectious  int
	Recovered   int

	// Radius is the infection radius in unit-square coordinates. Zero is
	// accepted and only infects exactly coincident agents.
	Radius float64

	// DaysToRecover is the threshold an Infectious agent's day count must
	// strictly exceed to recover.
	DaysToRecover int

	// MaxDays bounds the run.
	MaxDays int

	// Movement selects the Move stage policy. The zero value is MoveNonInfectious.
	Movement Movement
}

// Population returns the total number of agents.
func (p Params) Population() int {
	return p.Susceptible + p.Infectious + p.Recovered
}

// Validate checks every field and returns an error wrapping ErrConfiguration
// and ErrBadParams on the first violation.
// Complexity: O(1).
func (p Params) Validate() error {
	switch {
	case p.Susceptible < 0 || p.Infectious < 0 || p.Recovered < 0:
		return paramErrorf("initial counts must be non-negative: S=%d I=%d R=%d", p.Susceptible, p.Infectious, p.Recovered)
	case p.Population() <= 0:
		return paramErrorf("population must be positive")
	case math.IsNaN(p.Radius) || math.IsInf(p.Radius, 0) || p.Radius < 0:
		return paramErrorf("radius must be a finite non-negative number: %v", p.Radius)
	case p.DaysToRecover < 0:
		return paramErrorf("days to recover must be non-negative: %d", p.DaysToRecover)
	case p.MaxDays <= 0:
		return paramErrorf("max days must be positive: %d", p.MaxDays)
	case p.Movement != MoveNonInfectious && p.Movement != MoveAll:
		return paramErrorf("unknown movement %v", p.Movement)
	}

	return nil
}

func paramErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrConfiguration, ErrBadParams, fmt.Sprintf(format, args...))
}

// ParseMovement maps a configuration name to a Movement.
// An empty name selects MoveNonInfectious.
func ParseMovement(name string) (Movement, error) {
	switch name {
	case "", "non-infectious":
		return MoveNonInfectious, nil
	case "all":
		return MoveAll, nil
	default:
		return 0, paramErrorf("unknown movement %q", name)
	}
}
