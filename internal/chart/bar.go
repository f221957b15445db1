// Package chart renders the pitch distribution as a grouped bar chart.
package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/blaketorres2000-2/verlander-analysis/internal/analysis"
)

// Options controls output dimensions.
type Options struct {
	WidthIn  float64
	HeightIn float64
}

// DefaultOptions matches the original 12x8 inch figure.
func DefaultOptions() Options {
	return Options{WidthIn: 12, HeightIn: 8}
}

// Grouped writes a grouped bar chart to path (format from the extension,
// typically .png): pitch types on the X axis, one bar series per count,
// frequency on the Y axis, with a legend and rotated tick labels.
func Grouped(tab *analysis.ContingencyTable, title, path string, opt Options) error {
	if len(tab.PitchTypes) == 0 || len(tab.Counts) == 0 {
		return fmt.Errorf("empty contingency table")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Pitch Type"
	p.Y.Label.Text = "Frequency"

	n := len(tab.Counts)
	// ~50 points per pitch-type group, split across the count series.
	w := vg.Points(50.0 / float64(n))
	for j, count := range tab.Counts {
		vals := make(plotter.Values, len(tab.PitchTypes))
		for i := range tab.PitchTypes {
			vals[i] = float64(tab.Cells[i][j])
		}
		bars, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return fmt.Errorf("bar series %s: %w", count, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(j)
		bars.Offset = w * vg.Length(float64(j)-float64(n-1)/2)
		p.Add(bars)
		p.Legend.Add(count, bars)
	}
	p.Legend.Top = true
	p.NominalX(tab.PitchTypes...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if err := p.Save(vg.Length(opt.WidthIn)*vg.Inch, vg.Length(opt.HeightIn)*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
