package scan

import (
	"github.com/katalvlaran/sirsim/agent"
	"github.com/katalvlaran/sirsim/gridindex"
)

// Grid is a Scanner backed by a uniform spatial grid. Only Susceptible agents
// are indexed, so each source inspects the targets it could actually infect.
type Grid struct {
	// Options tunes the grid; the zero value selects gridindex defaults.
	Options gridindex.Options
}

var _ Scanner = Grid{}

// Scan implements Scanner.
// Complexity: O(n + Side² + Σ m_s) where m_s is the candidate count of source s;
// for uniform points and small radii this approaches O(n + k·n·r²).
func (g Grid) Scan(pool *agent.Pool, radius float64) ([]int, error) {
	sn, err := takeSnapshot(pool, radius)
	if err != nil {
		return nil, err
	}
	n := len(sn.states)
	marked := make([]bool, n)
	if len(sn.sources) == 0 {
		return collect(marked, n)
	}

	idx, err := buildIndex(sn, radius, g.Options)
	if err != nil {
		return nil, err
	}
	buf := make([]int, 0, 64)
	for _, s := range sn.sources {
		buf = idx.Near(sn.pos[s], buf[:0])
		if err = markHits(sn, s, buf, marked); err != nil {
			return nil, err
		}
	}

	return collect(marked, n)
}

// buildIndex buckets every Susceptible agent of sn.
func buildIndex(sn *snapshot, radius float64, opts gridindex.Options) (*gridindex.Index, error) {
	idx, err := gridindex.New(sn.pos, radius, opts)
	if err != nil {
		return nil, err
	}
	for j, st := range sn.states {
		if st != agent.Susceptible {
			continue
		}
		if err = idx.Insert(j); err != nil {
			return nil, err
		}
	}

	return idx, nil
}
