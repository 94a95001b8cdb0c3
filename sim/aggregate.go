package sim

import (
	"fmt"

	"github.com/katalvlaran/sirsim/agent"
)

// Counts holds the size of each compartment on one day.
type Counts struct {
	S int `json:"susceptible" yaml:"susceptible"`
	I int `json:"infectious" yaml:"infectious"`
	R int `json:"recovered" yaml:"recovered"`
}

// Total returns S+I+R.
func (c Counts) Total() int {
	return c.S + c.I + c.R
}

// Of returns the count of compartment s, or 0 for an invalid state.
func (c Counts) Of(s agent.State) int {
	switch s {
	case agent.Susceptible:
		return c.S
	case agent.Infectious:
		return c.I
	case agent.Recovered:
		return c.R
	default:
		return 0
	}
}

// Count recomputes compartment sizes from scratch. Nothing is cached between
// calls. A state outside the three compartments, or a total that differs from
// the pool size, is reported as ErrConservation (an ErrInvariantViolation).
// Complexity: O(n).
func Count(pool *agent.Pool) (Counts, error) {
	var c Counts
	for _, s := range pool.States() {
		switch s {
		case agent.Susceptible:
			c.S++
		case agent.Infectious:
			c.I++
		case agent.Recovered:
			c.R++
		}
	}
	if c.Total() != pool.Len() {
		return c, fmt.Errorf("%w: %w: %+v for population %d", ErrInvariantViolation, ErrConservation, c, pool.Len())
	}

	return c, nil
}

// ShouldStop reports whether the epidemic has no active cases left.
func ShouldStop(c Counts) bool {
	return c.I == 0
}

// Entry is one row of the time series.
type Entry struct {
	Day int `json:"day" yaml:"day"`
	Counts
}

// TimeSeries is the append-only per-day history of compartment counts.
// The zero value is empty and ready to use; the first Record must be day 0.
type TimeSeries struct {
	entries []Entry
}

// Record appends the counts for day. day must equal Len(), so entries stay
// consecutive from day 0 and are never rewritten.
// Complexity: O(1) amortized.
func (ts *TimeSeries) Record(day int, c Counts) error {
	if day != len(ts.entries) {
		return fmt.Errorf("%w: %w: got day %d, want %d", ErrInvariantViolation, ErrSeriesOrder, day, len(ts.entries))
	}
	ts.entries = append(ts.entries, Entry{Day: day, Counts: c})

	return nil
}

// Len returns the number of recorded days.
func (ts *TimeSeries) Len() int {
	return len(ts.entries)
}

// Last returns the most recent entry, if any.
func (ts *TimeSeries) Last() (Entry, bool) {
	if len(ts.entries) == 0 {
		return Entry{}, false
	}

	return ts.entries[len(ts.entries)-1], true
}

// Entries returns a copy of the recorded entries.
func (ts *TimeSeries) Entries() []Entry {
	out := make([]Entry, len(ts.entries))
	copy(out, ts.entries)

	return out
}

// Column returns the per-day counts of compartment s.
func (ts *TimeSeries) Column(s agent.State) []int {
	out := make([]int, len(ts.entries))
	for i, e := range ts.entries {
		out[i] = e.Of(s)
	}

	return out
}
