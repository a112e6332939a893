package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"parcelyield/analysis"
	"parcelyield/charts"
	"parcelyield/models"
)

// renderPNG draws into a buffer first so a failed render never leaves a
// half-written image on the wire; the chart is skipped with a 500 and the
// rest of the session is untouched.
func renderPNG(w http.ResponseWriter, draw func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		log.Println("chart render error:", err)
		http.Error(w, "chart unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = buf.WriteTo(w)
}

// handleCropBoxplotPNG renders the crop's yearly yield boxplot.
func (a *App) handleCropBoxplotPNG(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	crop := selection(r, "crop")
	box, err := analysis.BoxplotByYear(ds.Records, crop)
	if errors.Is(err, analysis.ErrEmptySelection) {
		http.Error(w, "no records for selection", http.StatusNotFound)
		return
	}

	byYear := make([]charts.YearValues, 0, len(box.Years))
	for _, ys := range box.Years {
		byYear = append(byYear, charts.YearValues{Year: ys.Year, Values: yieldsFor(ds.Records, crop, ys.Year)})
	}
	renderPNG(w, func(buf *bytes.Buffer) error {
		return charts.CropBoxplot(buf, crop, byYear, box.OverallMean)
	})
}

// handleCropTrendPNG renders the crop's trend line with its ±1σ band.
func (a *App) handleCropTrendPNG(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	crop := selection(r, "crop")
	trend, err := analysis.TrendByYear(ds.Records, crop)
	if errors.Is(err, analysis.ErrEmptySelection) {
		http.Error(w, "no records for selection", http.StatusNotFound)
		return
	}
	renderPNG(w, func(buf *bytes.Buffer) error {
		return charts.CropTrend(buf, crop, trend)
	})
}

// handleRankingPNG renders the parcel ranking bar chart.
func (a *App) handleRankingPNG(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	limit := 10
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	worst := r.URL.Query().Get("order") == "worst"
	title := fmt.Sprintf("Top %d parciel podľa výnosnosti", limit)
	if worst {
		title = fmt.Sprintf("Najhorších %d parciel podľa výnosnosti", limit)
	}
	ranks := analysis.RankParcels(ds.Records, limit, worst)
	renderPNG(w, func(buf *bytes.Buffer) error {
		return charts.ParcelRanking(buf, title, ranks)
	})
}

func yieldsFor(records []models.NormalizedRecord, crop string, year int) []float64 {
	var out []float64
	for _, r := range records {
		if r.Crop == crop && r.Year != nil && *r.Year == year {
			out = append(out, r.YieldHa)
		}
	}
	return out
}
