package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/sirsim/agent"
	"github.com/katalvlaran/sirsim/sim"
)

// compartments is the drawing and legend order.
var compartments = [agent.NumStates]agent.State{agent.Susceptible, agent.Infectious, agent.Recovered}

// colorFor returns the color of a compartment.
func colorFor(s agent.State) color.RGBA {
	switch s {
	case agent.Susceptible:
		return color.RGBA{R: 31, G: 119, B: 180, A: 255} // blue
	case agent.Infectious:
		return color.RGBA{R: 214, G: 39, B: 40, A: 255} // red
	case agent.Recovered:
		return color.RGBA{R: 44, G: 160, B: 44, A: 255} // green
	default:
		return color.RGBA{R: 160, G: 160, B: 160, A: 255}
	}
}

// title returns the capitalized compartment name.
func title(s agent.State) string {
	switch s {
	case agent.Susceptible:
		return "Susceptible"
	case agent.Infectious:
		return "Infectious"
	case agent.Recovered:
		return "Recovered"
	default:
		return s.String()
	}
}

// LegendLabels returns the scatter legend entries in S, I, R order,
// e.g. "Infectious: 3".
func LegendLabels(c sim.Counts) []string {
	out := make([]string, 0, len(compartments))
	for _, s := range compartments {
		out = append(out, fmt.Sprintf("%s: %d", title(s), c.Of(s)))
	}

	return out
}

// glyph is the dot style of a compartment.
func glyph(s agent.State) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  colorFor(s),
		Radius: vg.Points(2),
		Shape:  draw.CircleGlyph{},
	}
}

// swatch is a legend thumbnail that does not need any data, so an empty
// compartment still gets its legend entry.
type swatch draw.GlyphStyle

// Thumbnail implements plot.Thumbnailer.
func (s swatch) Thumbnail(c *draw.Canvas) {
	c.DrawGlyph(draw.GlyphStyle(s), c.Center())
}
