// Package chart renders analysis views as horizontal bar charts using
// gonum/plot. One bar per row, drawn bottom-up in the order given, so a
// view sorted ascending puts its largest bar on top.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ntworthk/COTM-2023-04/internal/models"
)

// Bar colours. Highlighted rows get the accent.
var (
	barBlue   = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	accentRed = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Options control a rendered chart.
type Options struct {
	Title  string
	XLabel string
	Width  vg.Length // zero means 8 inches
	Height vg.Length // zero means 5 inches
}

// RenderBars draws one horizontal bar per row and saves the chart to
// path (format chosen by extension, .png in this tool). Highlighted and
// plain rows are drawn as two overlaid series so the accent colour only
// touches the bars that earned it.
func RenderBars(rows []models.ChartRow, opts Options, path string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to draw for %s", path)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel

	base := make(plotter.Values, len(rows))
	accent := make(plotter.Values, len(rows))
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Label
		if row.Highlight {
			accent[i] = row.Value
		} else {
			base[i] = row.Value
		}
	}

	width := vg.Points(18)

	baseBars, err := plotter.NewBarChart(base, width)
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	baseBars.Horizontal = true
	baseBars.Color = barBlue
	baseBars.LineStyle.Width = 0

	accentBars, err := plotter.NewBarChart(accent, width)
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	accentBars.Horizontal = true
	accentBars.Color = accentRed
	accentBars.LineStyle.Width = 0

	p.Add(baseBars, accentBars)
	p.NominalY(names...)

	w, h := opts.Width, opts.Height
	if w == 0 {
		w = 8 * vg.Inch
	}
	if h == 0 {
		h = 5 * vg.Inch
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("saving chart %s: %w", path, err)
	}
	return nil
}
