package gridindex

import (
	"errors"

	"github.com/katalvlaran/sirsim/agent"
)

// Sentinel errors for gridindex operations.
var (
	// ErrBadCellSize indicates a negative or NaN minimum cell width.
	ErrBadCellSize = errors.New("gridindex: cell size must be a non-negative number")
	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("gridindex: at least one point is required")
	// ErrPointIndex indicates Insert was given an index outside the point set.
	ErrPointIndex = errors.New("gridindex: point index out of range")
)

// Options contains tunable parameters for the grid.
type Options struct {
	// MaxSide caps the cells per side. Zero selects 2·⌈√n⌉.
	MaxSide int
}

// DefaultOptions returns Options with MaxSide=0 (automatic cap).
func DefaultOptions() Options {
	return Options{MaxSide: 0}
}

// Index is a uniform grid over the unit square. Width == Height == Side.
// buckets[y*Side+x] holds indices into points.
// neighborOffsets is the precomputed 3×3 block, self cell first.
type Index struct {
	Side            int
	CellWidth       float64
	points          []agent.Point
	buckets         [][]int
	neighborOffsets [][2]int
}
