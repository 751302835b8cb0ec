// Package plot renders the magnitude of each requested output across
// the frequency sweep, as a quick visual check on the CSV table.
package plot

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/AJDColvin/Circuit-Analysis-Tool/pkg/circuit"
)

// Options control the rendered image geometry in inches.
type Options struct {
	Width  float64
	Height float64
}

// WriteResponse saves a magnitude-vs-frequency plot of every requested
// output to path. The image format follows the file extension.
func WriteResponse(path string, result *circuit.Result, opts Options) error {
	p := plot.New()
	p.Title.Text = "Cascade frequency response"
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Magnitude"

	if logScaleUsable(result.Frequencies) {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	var series []interface{}
	for col, out := range result.Outputs {
		pts := make(plotter.XYs, len(result.Frequencies))
		for i, freq := range result.Frequencies {
			pts[i].X = freq
			pts[i].Y = cmplx.Abs(result.Rows[i][col])
		}
		series = append(series, out.Name, pts)
	}
	if err := plotutil.AddLines(p, series...); err != nil {
		return fmt.Errorf("plotting response: %w", err)
	}

	w := vg.Length(opts.Width) * vg.Inch
	h := vg.Length(opts.Height) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("saving response plot: %w", err)
	}
	return nil
}

// Log axes reject non-positive coordinates, so fall back to linear
// when the sweep touches zero.
func logScaleUsable(freqs []float64) bool {
	for _, f := range freqs {
		if f <= 0 {
			return false
		}
	}
	return len(freqs) > 1
}
