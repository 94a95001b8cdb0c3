package agent

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the root of every error caused by invalid caller
	// parameters. It is always detected before any state is mutated.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvariant is the root of every error that signals an implementation
	// defect, such as broken population conservation.
	ErrInvariant = errors.New("invariant violation")
)

var (
	// ErrBadPopulation indicates a non-positive population size.
	ErrBadPopulation = errors.New("agent: population size must be positive")
	// ErrBadSeedCounts indicates negative initial counts or counts exceeding the population.
	ErrBadSeedCounts = errors.New("agent: initial infectious/recovered counts out of range")
	// ErrAlreadySeeded indicates Seed was called on a pool that is already seeded.
	ErrAlreadySeeded = errors.New("agent: pool already seeded")
	// ErrBadAgent indicates an agent supplied to FromAgents is malformed.
	ErrBadAgent = errors.New("agent: malformed agent")

	// ErrIndexOutOfRange indicates an agent index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("agent: index out of range")
	// ErrIllegalTransition indicates a state change the SIR diagram forbids.
	ErrIllegalTransition = errors.New("agent: illegal state transition")
)

// configErrorf attaches context to a specific sentinel and joins it to ErrConfiguration.
func configErrorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrConfiguration, sentinel, fmt.Sprintf(format, args...))
}

// invariantErrorf attaches context to a specific sentinel and joins it to ErrInvariant.
func invariantErrorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvariant, sentinel, fmt.Sprintf(format, args...))
}
