package gridindex

import (
	"math"

	"github.com/katalvlaran/sirsim/agent"
)

// New builds an empty Index over points whose cells are at least minCell wide.
// points is retained, not copied; callers pass a snapshot they will not mutate
// while the index is in use.
//
// Side = min(⌊1/minCell⌋, cap), at least 1, where cap comes from opts.MaxSide.
// minCell == 0 yields Side == cap.
// Returns ErrNoPoints for an empty slice and ErrBadCellSize for minCell < 0 or NaN.
// Complexity: O(Side²).
func New(points []agent.Point, minCell float64, opts Options) (*Index, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if math.IsNaN(minCell) || minCell < 0 {
		return nil, ErrBadCellSize
	}

	limit := opts.MaxSide
	if limit <= 0 {
		limit = 2 * int(math.Ceil(math.Sqrt(float64(len(points)))))
	}
	side := limit
	if minCell > 0 {
		if fit := math.Floor(1 / minCell); fit < float64(limit) {
			side = int(fit)
		}
	}
	if side < 1 {
		side = 1
	}

	idx := &Index{
		Side:      side,
		CellWidth: 1 / float64(side),
		points:    points,
		buckets:   make([][]int, side*side),
		neighborOffsets: [][2]int{
			{0, 0}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
		},
	}

	return idx, nil
}

// Insert buckets point i.
// Complexity: O(1) amortized.
func (g *Index) Insert(i int) error {
	if i < 0 || i >= len(g.points) {
		return ErrPointIndex
	}
	x, y := g.CellOf(g.points[i])
	c := g.index(x, y)
	g.buckets[c] = append(g.buckets[c], i)

	return nil
}

// CellOf returns the cell coordinates containing p. Coordinates are clamped
// into [0, Side-1] so values at the float edge of the square stay in range.
// Complexity: O(1).
func (g *Index) CellOf(p agent.Point) (x, y int) {
	return g.clamp(int(p.X * float64(g.Side))), g.clamp(int(p.Y * float64(g.Side)))
}

// InBounds reports whether cell (x,y) lies within the grid.
// Complexity: O(1).
func (g *Index) InBounds(x, y int) bool {
	return x >= 0 && x < g.Side && y >= 0 && y < g.Side
}

// Bucket returns the indices stored in cell (x,y), or nil when out of bounds.
// The returned slice must not be modified.
func (g *Index) Bucket(x, y int) []int {
	if !g.InBounds(x, y) {
		return nil
	}

	return g.buckets[g.index(x, y)]
}

// Near appends to dst every inserted index whose cell is in the 3×3 block
// around the cell of p, and returns the extended slice.
// Complexity: O(9 + m).
func (g *Index) Near(p agent.Point, dst []int) []int {
	cx, cy := g.CellOf(p)
	for _, d := range g.neighborOffsets {
		nx, ny := cx+d[0], cy+d[1]
		dst = append(dst, g.Bucket(nx, ny)...)
	}

	return dst
}

// index maps (x,y) to a row-major cell index: y*Side + x.
// Complexity: O(1).
func (g *Index) index(x, y int) int {
	return y*g.Side + x
}

func (g *Index) clamp(c int) int {
	if c < 0 {
		return 0
	}
	if c >= g.Side {
		return g.Side - 1
	}

	return c
}
