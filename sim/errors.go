package sim

import (
	"errors"

	"github.com/katalvlaran/sirsim/agent"
)

// Error roots shared with package agent. Match with errors.Is.
var (
	// ErrConfiguration marks invalid caller parameters. It is always reported
	// before any simulation state is created.
	ErrConfiguration = agent.ErrConfiguration
	// ErrInvariantViolation marks an implementation defect. A Simulation that
	// returned it refuses to step again.
	ErrInvariantViolation = agent.ErrInvariant
)

var (
	// ErrBadParams indicates a Params field outside its domain.
	ErrBadParams = errors.New("sim: invalid parameters")
	// ErrConservation indicates compartment counts that do not sum to the population.
	ErrConservation = errors.New("sim: compartment counts do not sum to the population")
	// ErrSeriesOrder indicates a time-series record that is not the next consecutive day.
	ErrSeriesOrder = errors.New("sim: time series day out of order")
)
