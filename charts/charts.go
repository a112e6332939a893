// Package charts renders the dashboard's PNG charts with gonum/plot.
// Each renderer takes already-aggregated view data and draws into an
// io.Writer so handlers can stream straight to the response.
package charts

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"parcelyield/models"
)

var (
	barBlue   = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	meanRed   = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	bandGreen = color.RGBA{R: 0, G: 100, B: 80, A: 50}
)

// YearValues feeds one box of the yearly boxplot: the raw yields of a year.
type YearValues struct {
	Year   int
	Values []float64
}

// CropBoxplot draws per-year yield distributions for one crop with a dashed
// line at the whole-period mean.
func CropBoxplot(w io.Writer, crop string, byYear []YearValues, overallMean float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Variabilita výnosov %s", crop)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Rok"
	p.Y.Label.Text = "Výnos (t/ha)"

	labels := make([]string, len(byYear))
	for i, yv := range byYear {
		labels[i] = fmt.Sprintf("%d", yv.Year)
		box, err := plotter.NewBoxPlot(vg.Points(24), float64(i), plotter.Values(yv.Values))
		if err != nil {
			return fmt.Errorf("boxplot %d: %w", yv.Year, err)
		}
		p.Add(box)
	}
	p.NominalX(labels...)

	mean := plotter.NewFunction(func(float64) float64 { return overallMean })
	mean.Color = meanRed
	mean.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(mean)
	p.Legend.Add(fmt.Sprintf("Priemer za obdobie: %.3f t/ha", overallMean), mean)
	p.Legend.Top = true

	p.Add(plotter.NewGrid())
	return writePNG(p, w, 10*vg.Inch, 6*vg.Inch)
}

// CropTrend draws the crop's yearly mean yield with a ±1 standard deviation
// band behind the line.
func CropTrend(w io.Writer, crop string, trend []models.YearTrendStats) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Trend výnosov %s v čase", crop)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Rok"
	p.Y.Label.Text = "Výnos (t/ha)"

	// Band polygon: upper bound left to right, lower bound back again.
	band := make(plotter.XYs, 0, 2*len(trend))
	for _, t := range trend {
		band = append(band, plotter.XY{X: float64(t.Year), Y: t.Mean + t.StdDev})
	}
	for i := len(trend) - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: float64(trend[i].Year), Y: trend[i].Mean - trend[i].StdDev})
	}
	if len(trend) > 1 {
		poly, err := plotter.NewPolygon(band)
		if err != nil {
			return fmt.Errorf("trend band: %w", err)
		}
		poly.Color = bandGreen
		poly.LineStyle.Width = vg.Length(0)
		p.Add(poly)
	}

	points := make(plotter.XYs, len(trend))
	for i, t := range trend {
		points[i] = plotter.XY{X: float64(t.Year), Y: t.Mean}
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("trend line: %w", err)
	}
	line.Width = vg.Points(2)
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return fmt.Errorf("trend points: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)

	p.Add(line, scatter, plotter.NewGrid())
	p.Legend.Add("Priemerný výnos", line)
	p.Legend.Top = true
	return writePNG(p, w, 10*vg.Inch, 5*vg.Inch)
}

// ParcelRanking draws a bar per parcel of a ranking, labelled with the
// parcel names along X.
func ParcelRanking(w io.Writer, title string, ranks []models.ParcelRank) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Priemerná výnosnosť (%)"

	values := make(plotter.Values, len(ranks))
	labels := make([]string, len(ranks))
	for i, r := range ranks {
		values[i] = r.AvgYieldPercentage
		labels[i] = r.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("ranking bars: %w", err)
	}
	bars.Color = barBlue
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XCenter

	return writePNG(p, w, 12*vg.Inch, 6*vg.Inch)
}

func writePNG(p *plot.Plot, w io.Writer, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
