// SPDX-License-Identifier: MIT

package histogram

import (
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot sizes.
const (
	PlotWidth  = 10 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

var barColor = color.RGBA{R: 40, G: 90, B: 160, A: 255}

// Plot renders h as a bar chart and writes it to path. The image format
// follows the file extension (png, svg, pdf, ...). Spatial histograms are
// folded onto a single cell.
// Returns ErrNilHistogram, ErrEmpty, or the error from plot.Save.
func Plot(h *Histogram, path, title string) error {
	if h == nil {
		return histErrorf(opPlot, ErrNilHistogram)
	}
	if h.Total() == 0 {
		return histErrorf(opPlot, ErrEmpty)
	}

	folded := make(plotter.Values, h.Bins)
	for k := 0; k < h.Cells; k++ {
		floats.Add(folded, h.Cell(k))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Code"
	p.Y.Label.Text = "Count"
	p.X.Min = 0
	p.X.Max = float64(h.Bins)

	// Bars shrink with the bin count so 2^16 bins still fit the canvas.
	barWidth := PlotWidth / vg.Length(h.Bins)
	if barWidth < vg.Points(0.1) {
		barWidth = vg.Points(0.1)
	}
	bars, err := plotter.NewBarChart(folded, barWidth)
	if err != nil {
		return histErrorf(opPlot, err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)

	if err := p.Save(PlotWidth, PlotHeight, path); err != nil {
		return histErrorf(opPlot, err)
	}

	return nil
}
