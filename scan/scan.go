package scan

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sirsim/agent"
)

var (
	// ErrBadRadius indicates a negative, NaN or infinite infection radius.
	ErrBadRadius = errors.New("scan: radius must be a finite non-negative number")
	// ErrUnknownScanner indicates ByName was asked for an unsupported kind.
	ErrUnknownScanner = errors.New("scan: unknown scanner kind")
)

// Scanner computes the set of agents to newly infect.
type Scanner interface {
	// Scan returns ascending, duplicate-free indices of Susceptible agents
	// within radius of an Infectious agent. It must not mutate pool.
	Scan(pool *agent.Pool, radius float64) ([]int, error)
}

// snapshot is the consistent pre-scan view of a pool.
type snapshot struct {
	pos     []agent.Point
	states  []agent.State
	sources []int
	r2      float64
}

func takeSnapshot(pool *agent.Pool, radius float64) (*snapshot, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return nil, fmt.Errorf("%w: %w: radius=%v", agent.ErrConfiguration, ErrBadRadius, radius)
	}
	snap := &snapshot{
		pos:    pool.Positions(),
		states: pool.States(),
		r2:     radius * radius,
	}
	for i, s := range snap.states {
		if s == agent.Infectious {
			snap.sources = append(snap.sources, i)
		}
	}

	return snap, nil
}

// hit applies the infection predicate for source s and target j.
func (sn *snapshot) hit(s, j int) bool {
	return j != s &&
		sn.states[j] == agent.Susceptible &&
		sn.pos[s].DistSq(sn.pos[j]) <= sn.r2
}

// collect turns a mark vector into ascending indices, checking bounds.
func collect(marked []bool, n int) ([]int, error) {
	if len(marked) != n {
		return nil, fmt.Errorf("%w: %w: mark vector %d for population %d",
			agent.ErrInvariant, agent.ErrIndexOutOfRange, len(marked), n)
	}
	out := make([]int, 0)
	for j, m := range marked {
		if m {
			out = append(out, j)
		}
	}

	return out, nil
}

// markHits sets marked[j] for every j that hits one of the given targets.
func markHits(sn *snapshot, s int, targets []int, marked []bool) error {
	n := len(sn.states)
	for _, j := range targets {
		if j < 0 || j >= n {
			return fmt.Errorf("%w: %w: target %d, population %d",
				agent.ErrInvariant, agent.ErrIndexOutOfRange, j, n)
		}
		if !marked[j] && sn.hit(s, j) {
			marked[j] = true
		}
	}

	return nil
}

// Neighbors returns, in ascending order, every agent (any state) within
// radius of source. The source itself is never included.
// Complexity: O(n).
func Neighbors(pool *agent.Pool, source int, radius float64) ([]int, error) {
	if _, err := pool.At(source); err != nil {
		return nil, err
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return nil, fmt.Errorf("%w: %w: radius=%v", agent.ErrConfiguration, ErrBadRadius, radius)
	}
	pos := pool.Positions()
	r2 := radius * radius
	var out []int
	for j := range pos {
		if j != source && pos[source].DistSq(pos[j]) <= r2 {
			out = append(out, j)
		}
	}

	return out, nil
}
