package render

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/sirsim/sim"
)

// ErrEmptySeries indicates a trend or animation without any entry.
var ErrEmptySeries = errors.New("render: empty time series")

// Trend plots the S, I and R series against "Days", legend on top.
func Trend(entries []sim.Entry) (*plot.Plot, error) {
	if len(entries) == 0 {
		return nil, ErrEmptySeries
	}

	p := plot.New()
	p.X.Label.Text = "Days"
	p.Legend.Top = true
	for _, s := range compartments {
		xys := make(plotter.XYs, len(entries))
		for i, e := range entries {
			xys[i] = plotter.XY{X: float64(e.Day), Y: float64(e.Of(s))}
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("render: trend %v: %w", s, err)
		}
		l.LineStyle.Color = colorFor(s)
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(title(s), l)
	}

	// A one-day series would otherwise collapse both axes to a point.
	p.X.Min, p.Y.Min = 0, 0
	if p.X.Max < 1 {
		p.X.Max = 1
	}
	if p.Y.Max < 1 {
		p.Y.Max = 1
	}

	return p, nil
}

// WriteTrendCSV writes a header and one row per entry.
func WriteTrendCSV(w io.Writer, entries []sim.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "susceptible", "infectious", "recovered"}); err != nil {
		return fmt.Errorf("render: write csv header: %w", err)
	}
	for _, e := range entries {
		row := []string{strconv.Itoa(e.Day), strconv.Itoa(e.S), strconv.Itoa(e.I), strconv.Itoa(e.R)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("render: write csv day %d: %w", e.Day, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
