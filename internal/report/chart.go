package report

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/swbparts/internal/parts"
)

var (
	standardColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	cornerColor   = color.RGBA{R: 100, G: 149, B: 237, A: 255}
)

// Chart image size
const (
	chartWidth  = 7 * vg.Inch
	chartHeight = 2.8 * vg.Inch
)

// totalsChart draws Standard and Corner piece totals per dimension value as a
// grouped bar chart and returns it as PNG bytes.
func totalsChart(totals *parts.Totals, d parts.Dimension) ([]byte, error) {
	rows := totals.Rows(d)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no %s values to chart", d)
	}

	standard := make(plotter.Values, len(rows))
	corner := make(plotter.Values, len(rows))
	keys := make([]string, len(rows))
	for i, r := range rows {
		standard[i] = float64(r.Standard)
		corner[i] = float64(r.Corner)
		keys[i] = r.Key
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Pieces", d)
	p.Y.Label.Text = "Pieces"
	p.X.Label.Text = fmt.Sprintf("%s (in)", d)

	barWidth := vg.Points(14)

	standardBars, err := plotter.NewBarChart(standard, barWidth)
	if err != nil {
		return nil, err
	}
	standardBars.Color = standardColor
	standardBars.LineStyle.Width = vg.Length(0)
	standardBars.Offset = -barWidth / 2

	cornerBars, err := plotter.NewBarChart(corner, barWidth)
	if err != nil {
		return nil, err
	}
	cornerBars.Color = cornerColor
	cornerBars.LineStyle.Width = vg.Length(0)
	cornerBars.Offset = barWidth / 2

	p.Add(standardBars, cornerBars)
	p.Legend.Add("Standard", standardBars)
	p.Legend.Add("Corner", cornerBars)
	p.Legend.Top = true
	p.NominalX(keys...)

	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", d, err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode %s chart: %w", d, err)
	}
	return buf.Bytes(), nil
}
