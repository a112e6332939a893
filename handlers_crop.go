package main

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"parcelyield/analysis"
)

// selection returns the decoded {crop} or {name} route parameter. Labels are
// Slovak with spaces and diacritics, so they arrive percent-encoded and chi
// hands the raw segment back when the path needed escaping.
func selection(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if dec, err := url.PathUnescape(v); err == nil {
		return dec
	}
	return v
}

// renderSelection writes v, mapping an empty selection to a 404 warning.
// The failure stays local to this view; no other endpoint is affected.
func renderSelection(w http.ResponseWriter, v any, err error) {
	if errors.Is(err, analysis.ErrEmptySelection) {
		http.Error(w, "no records for selection", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, v)
}

// handleCropSummary returns the crop view header metrics.
func (a *App) handleCropSummary(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	sum, err := analysis.CropSummary(ds.Records, selection(r, "crop"))
	renderSelection(w, sum, err)
}

// handleCropBoxplot returns per-year distribution stats for the crop.
func (a *App) handleCropBoxplot(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	box, err := analysis.BoxplotByYear(ds.Records, selection(r, "crop"))
	renderSelection(w, box, err)
}

// handleCropTrend returns the crop's yearly mean/σ/count series.
func (a *App) handleCropTrend(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	trend, err := analysis.TrendByYear(ds.Records, selection(r, "crop"))
	renderSelection(w, trend, err)
}

// handleAnova runs the one-way ANOVA across crops. Insufficient groups come
// back as an informational 200, never a failure.
func (a *App) handleAnova(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	writeJSON(w, analysis.OneWayANOVA(ds.Records))
}
