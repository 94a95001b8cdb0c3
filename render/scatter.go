package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/sirsim/sim"
)

var (
	// ErrImageSize indicates a requested image side below MinSize.
	ErrImageSize = errors.New("render: image size too small")
	// ErrBadState indicates a frame agent outside the three compartments.
	ErrBadState = errors.New("render: agent state out of range")
)

// MinSize is the smallest accepted image side in pixels; below it the title,
// legend and tick labels no longer fit.
const MinSize = 200

// dpi makes one vg point one pixel.
const dpi = 72

// Scatter plots frame f: agents as dots (blue S, red I, green R) over the
// unit square, titled "Day: N", with one legend entry per compartment
// carrying its count.
func Scatter(f sim.Frame) (*plot.Plot, error) {
	var byState [len(compartments)]plotter.XYs
	for i, a := range f.Agents {
		if !a.State.Valid() {
			return nil, fmt.Errorf("%w: agent %d: %v", ErrBadState, i, a.State)
		}
		byState[a.State] = append(byState[a.State], plotter.XY{X: a.Pos.X, Y: a.Pos.Y})
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Day: %d", f.Day)
	labels := LegendLabels(f.Counts)
	for k, s := range compartments {
		if len(byState[s]) > 0 {
			sc, err := plotter.NewScatter(byState[s])
			if err != nil {
				return nil, fmt.Errorf("render: scatter %v: %w", s, err)
			}
			sc.GlyphStyle = glyph(s)
			p.Add(sc)
		}
		p.Legend.Add(labels[k], swatch(glyph(s)))
	}
	p.Legend.Top = true
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	return p, nil
}

// canvas draws p on a size×size white raster.
func canvas(p *plot.Plot, size int) (*vgimg.Canvas, error) {
	if size < MinSize {
		return nil, ErrImageSize
	}
	side := vg.Points(float64(size))
	c := vgimg.NewWith(
		vgimg.UseWH(side, side),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(draw.New(c))

	return c, nil
}

// Image rasterizes p into a size×size image.
func Image(p *plot.Plot, size int) (image.Image, error) {
	c, err := canvas(p, size)
	if err != nil {
		return nil, err
	}

	return c.Image(), nil
}

// WritePNG rasterizes p into a size×size PNG written to w.
func WritePNG(w io.Writer, p *plot.Plot, size int) error {
	c, err := canvas(p, size)
	if err != nil {
		return err
	}
	if _, err = (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}
