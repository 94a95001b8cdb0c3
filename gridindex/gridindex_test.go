package gridindex_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/sirsim/agent"
	"github.com/katalvlaran/sirsim/gridindex"
)

//----------------------------------------------------------------------------//
// New and sizing Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty inputs and bad cell sizes.
func TestNew_Errors(t *testing.T) {
	pts := []agent.Point{{X: 0.5, Y: 0.5}}
	cases := []struct {
		name    string
		points  []agent.Point
		minCell float64
		err     error
	}{
		{"NoPoints", nil, 0.1, gridindex.ErrNoPoints},
		{"NegativeCell", pts, -0.1, gridindex.ErrBadCellSize},
		{"NaNCell", pts, math.NaN(), gridindex.ErrBadCellSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridindex.New(tc.points, tc.minCell, gridindex.DefaultOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("New error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNew_Side checks that cells are never narrower than the requested width.
func TestNew_Side(t *testing.T) {
	pts := make([]agent.Point, 10000) // auto cap = 200
	cases := []struct {
		minCell float64
		opts    gridindex.Options
		side    int
	}{
		{0.25, gridindex.DefaultOptions(), 4},
		{0.3, gridindex.DefaultOptions(), 3},
		{0.6, gridindex.DefaultOptions(), 1},
		{5, gridindex.DefaultOptions(), 1},
		{0, gridindex.DefaultOptions(), 200},
		{0.001, gridindex.DefaultOptions(), 200},
		{0.001, gridindex.Options{MaxSide: 16}, 16},
	}
	for _, tc := range cases {
		g, err := gridindex.New(pts, tc.minCell, tc.opts)
		if err != nil {
			t.Fatalf("New(%v) error: %v", tc.minCell, err)
		}
		if g.Side != tc.side {
			t.Errorf("New(%v).Side = %d; want %d", tc.minCell, g.Side, tc.side)
		}
		if g.CellWidth < tc.minCell && g.Side > 1 {
			t.Errorf("CellWidth %v < minCell %v", g.CellWidth, tc.minCell)
		}
	}
}

//----------------------------------------------------------------------------//
// Insert, CellOf and Near Tests
//----------------------------------------------------------------------------//

// TestCellOf_Clamps keeps edge coordinates inside the grid.
func TestCellOf_Clamps(t *testing.T) {
	// One point alone would cap the side at 2; MaxSide lifts the cap.
	g, err := gridindex.New([]agent.Point{{}}, 0.25, gridindex.Options{MaxSide: 4})
	if err != nil {
		t.Fatal(err)
	}
	if g.Side != 4 {
		t.Fatalf("Side = %d; want 4", g.Side)
	}
	cases := []struct {
		p    agent.Point
		x, y int
	}{
		{agent.Point{X: 0, Y: 0}, 0, 0},
		{agent.Point{X: 0.2499, Y: 0.25}, 0, 1},
		{agent.Point{X: math.Nextafter(1, 0), Y: 0.999}, 3, 3},
	}
	for _, tc := range cases {
		x, y := g.CellOf(tc.p)
		if x != tc.x || y != tc.y {
			t.Errorf("CellOf(%+v) = (%d,%d); want (%d,%d)", tc.p, x, y, tc.x, tc.y)
		}
		if !g.InBounds(x, y) {
			t.Errorf("CellOf(%+v) out of bounds", tc.p)
		}
	}
}

// TestInsert_Errors rejects indices outside the point set.
func TestInsert_Errors(t *testing.T) {
	g, _ := gridindex.New([]agent.Point{{}}, 0.5, gridindex.DefaultOptions())
	for _, i := range []int{-1, 1} {
		if err := g.Insert(i); !errors.Is(err, gridindex.ErrPointIndex) {
			t.Errorf("Insert(%d) error = %v; want ErrPointIndex", i, err)
		}
	}
}

// TestNear_Block verifies Near returns exactly the 3×3 block around a cell.
func TestNear_Block(t *testing.T) {
	// 4×4 grid, one point at the centre of every cell.
	var pts []agent.Point
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pts = append(pts, agent.Point{X: (float64(x) + 0.5) / 4, Y: (float64(y) + 0.5) / 4})
		}
	}
	g, err := gridindex.New(pts, 0.25, gridindex.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	for i := range pts {
		if err := g.Insert(i); err != nil {
			t.Fatal(err)
		}
	}

	// Corner cell (0,0): itself plus (1,0), (0,1), (1,1).
	got := g.Near(agent.Point{X: 0.1, Y: 0.1}, nil)
	slices.Sort(got)
	if want := []int{0, 1, 4, 5}; !slices.Equal(got, want) {
		t.Errorf("Near(corner) = %v; want %v", got, want)
	}

	// Interior cell (1,1): full 3×3 block.
	got = g.Near(agent.Point{X: 0.3, Y: 0.3}, nil)
	slices.Sort(got)
	if want := []int{0, 1, 2, 4, 5, 6, 8, 9, 10}; !slices.Equal(got, want) {
		t.Errorf("Near(interior) = %v; want %v", got, want)
	}

	if b := g.Bucket(3, 3); !slices.Equal(b, []int{15}) {
		t.Errorf("Bucket(3,3) = %v; want [15]", b)
	}
	if b := g.Bucket(4, 0); b != nil {
		t.Errorf("Bucket out of bounds = %v; want nil", b)
	}
}

// TestNear_Complete checks that every point within minCell of a query is
// returned by Near.
func TestNear_Complete(t *testing.T) {
	const r = 0.07
	pts := make([]agent.Point, 0, 400)
	for i := 0; i < 400; i++ {
		// deterministic scatter
		x := math.Mod(float64(i)*0.618034, 1)
		y := math.Mod(float64(i)*0.414214, 1)
		pts = append(pts, agent.Point{X: x, Y: y})
	}
	g, err := gridindex.New(pts, r, gridindex.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	for i := range pts {
		_ = g.Insert(i)
	}
	for qi, q := range pts {
		near := g.Near(q, nil)
		for j, p := range pts {
			if q.DistSq(p) <= r*r && !slices.Contains(near, j) {
				t.Fatalf("point %d within r of %d missing from Near", j, qi)
			}
		}
	}
}
