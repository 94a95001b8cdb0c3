package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/sirsim/sim"
)

// Artifact name prefixes.
const (
	ScatterPrefix   = "SIR"
	TrendPrefix     = "SIR_Trend"
	AnimationPrefix = "SIR_Animation"
)

// FrameWriter saves a scatter PNG for every frame whose stage is selected.
// It implements sim.Observer.
type FrameWriter struct {
	Dir    string
	Size   int
	Stages []sim.Stage // empty selects every stage
	Logger *zap.Logger

	written []string
}

// Observe implements sim.Observer.
func (w *FrameWriter) Observe(f sim.Frame) error {
	if !selected(w.Stages, f.Stage) {
		return nil
	}
	p, err := Scatter(f)
	if err != nil {
		return err
	}
	path, err := SavePNG(w.Dir, ScatterPrefix, p, w.Size)
	if err != nil {
		return err
	}
	w.written = append(w.written, path)
	if w.Logger != nil {
		w.Logger.Debug("frame written",
			zap.String("path", path),
			zap.Int("day", f.Day),
			zap.Stringer("stage", f.Stage))
	}

	return nil
}

// Written returns the paths saved so far, in order.
func (w *FrameWriter) Written() []string {
	return append([]string(nil), w.written...)
}

// Animation collects scatter frames of the selected stages, keeping one in
// every Every of them, and encodes them as an animated GIF.
type Animation struct {
	Size   int
	Every  int         // ≤ 1 keeps every frame
	Stages []sim.Stage // empty selects every stage

	seen   int
	frames []*image.Paletted
}

// Observe implements sim.Observer.
func (a *Animation) Observe(f sim.Frame) error {
	if !selected(a.Stages, f.Stage) {
		return nil
	}
	a.seen++
	if a.Every > 1 && (a.seen-1)%a.Every != 0 {
		return nil
	}
	p, err := Scatter(f)
	if err != nil {
		return err
	}
	img, err := Image(p, a.Size)
	if err != nil {
		return err
	}
	b := img.Bounds()
	pal := image.NewPaletted(b, palette.Plan9)
	draw.Draw(pal, b, img, b.Min, draw.Src)
	a.frames = append(a.frames, pal)

	return nil
}

// Len returns the number of collected frames.
func (a *Animation) Len() int {
	return len(a.frames)
}

// Encode writes the collected frames with delay hundredths of a second
// between them.
func (a *Animation) Encode(w io.Writer, delay int) error {
	if len(a.frames) == 0 {
		return fmt.Errorf("render: encode animation: %w", ErrEmptySeries)
	}
	out := &gif.GIF{}
	for _, pal := range a.frames {
		out.Image = append(out.Image, pal)
		out.Delay = append(out.Delay, delay)
	}

	return gif.EncodeAll(w, out)
}

func selected(stages []sim.Stage, st sim.Stage) bool {
	if len(stages) == 0 {
		return true
	}
	for _, s := range stages {
		if s == st {
			return true
		}
	}

	return false
}
