package main

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotLosses saves the loss curve as a PNG file.
func plotLosses(losses []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Training loss"
	p.X.Label.Text = "step"
	p.Y.Label.Text = "loss"

	points := make(plotter.XYs, len(losses))
	for i, loss := range losses {
		points[i].X = float64(i + 1)
		points[i].Y = loss
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return errors.Wrap(err, "plot")
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "plot: saving %s", path)
	}
	return nil
}
