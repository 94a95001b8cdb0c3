package scan

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sirsim/agent"
	"github.com/katalvlaran/sirsim/gridindex"
)

// Parallel partitions Infectious sources across worker goroutines. Each worker
// marks into a private vector; vectors are merged only after every worker has
// finished, so the result equals the sequential scan.
//
// The zero value uses runtime.GOMAXPROCS(0) workers and brute-force search.
type Parallel struct {
	// Workers is the number of goroutines; <= 0 means GOMAXPROCS.
	Workers int
	// UseGrid selects grid-backed candidate search inside each worker.
	UseGrid bool
	// Options tunes the grid when UseGrid is set.
	Options gridindex.Options
}

var _ Scanner = Parallel{}

// NewParallel returns a Parallel scanner with the given worker count.
// Panics if workers < 1.
func NewParallel(workers int, useGrid bool) Parallel {
	if workers < 1 {
		panic("scan: NewParallel(workers < 1)")
	}

	return Parallel{Workers: workers, UseGrid: useGrid}
}

// Scan implements Scanner.
// Complexity: O(k·n / W) per worker for brute force, plus O(W·n) to merge.
func (p Parallel) Scan(pool *agent.Pool, radius float64) ([]int, error) {
	sn, err := takeSnapshot(pool, radius)
	if err != nil {
		return nil, err
	}
	n := len(sn.states)
	k := len(sn.sources)
	if k == 0 {
		return collect(make([]bool, n), n)
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > k {
		workers = k
	}

	// The index is read-only once built, so workers share it.
	var idx *gridindex.Index
	if p.UseGrid {
		if idx, err = buildIndex(sn, radius, p.Options); err != nil {
			return nil, err
		}
	}

	parts := make([][]bool, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*k/workers, (w+1)*k/workers
		g.Go(func() error {
			marked := make([]bool, n)
			var buf []int
			for _, s := range sn.sources[lo:hi] {
				if idx != nil {
					buf = idx.Near(sn.pos[s], buf[:0])
					if err := markHits(sn, s, buf, marked); err != nil {
						return err
					}
					continue
				}
				for j := 0; j < n; j++ {
					if !marked[j] && sn.hit(s, j) {
						marked[j] = true
					}
				}
			}
			parts[w] = marked

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]bool, n)
	for _, part := range parts {
		for j, m := range part {
			if m {
				merged[j] = true
			}
		}
	}

	return collect(merged, n)
}
