package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/twpayne/go-geom/encoding/geojson"

	"parcelyield/analysis"
	"parcelyield/dataset"
)

// handleParcelTimeline returns the parcel's per-crop yield series.
func (a *App) handleParcelTimeline(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	series, err := analysis.Timeline(ds.Records, selection(r, "name"))
	renderSelection(w, series, err)
}

// handleParcelCrops returns the parcel's per-crop comparison rows.
func (a *App) handleParcelCrops(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	cmp, err := analysis.CompareCrops(ds.Records, selection(r, "name"))
	renderSelection(w, cmp, err)
}

type parcelMapView struct {
	Name    string           `json:"name"`
	Center  mapCenter        `json:"center"`
	Zoom    int              `json:"zoom"`
	Feature *geojson.Feature `json:"feature"`
}

// handleParcelMapView renders the selected parcel alone on a map: its
// boundary, the bounds midpoint and a zoom fitted to the parcel size.
// Absent or unusable geometry is a local 404, like an empty selection.
func (a *App) handleParcelMapView(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	name := selection(r, "name")
	wktText, has, err := analysis.ParcelGeometry(ds.Records, name)
	if errors.Is(err, analysis.ErrEmptySelection) {
		http.Error(w, "no records for selection", http.StatusNotFound)
		return
	}
	if !has {
		http.Error(w, "no geometry for parcel", http.StatusNotFound)
		return
	}
	g, err := dataset.ParseWKT(wktText)
	if err != nil {
		log.Printf("parcel %q: unusable geometry: %v", name, err)
		http.Error(w, "no geometry for parcel", http.StatusNotFound)
		return
	}
	lon, lat := dataset.BoundsCenter(g)
	writeJSON(w, parcelMapView{
		Name:   name,
		Center: mapCenter{Lat: lat, Lon: lon},
		Zoom:   dataset.FitZoom(g),
		Feature: &geojson.Feature{
			ID:         name,
			Geometry:   g,
			Properties: map[string]interface{}{"name": name},
		},
	})
}

// handleParcelRadar returns the parcel performance radar axes.
func (a *App) handleParcelRadar(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	radar, err := analysis.Radar(ds.Records, selection(r, "name"))
	renderSelection(w, radar, err)
}
