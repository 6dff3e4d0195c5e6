package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// newSinePlot builds the sine wave line chart in memory.
func newSinePlot(x, y []float64) (*plot.Plot, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, fmt.Errorf("%w: plot needs matching non-empty x and y, got %d and %d",
			ErrInvalidArgument, len(x), len(y))
	}

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}

	p := plot.New()
	p.Title.Text = "Sine Wave"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("build line: %w", err)
	}
	p.Add(line)
	p.Legend.Add("sin(x)", line)
	return p, nil
}

// savePlot renders p to path. The format follows the file extension.
func savePlot(p *plot.Plot, path string) error {
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
