package main

import (
	"log"
	"net/http"
	"strconv"

	"github.com/twpayne/go-geom/encoding/geojson"

	"parcelyield/analysis"
	"parcelyield/dataset"
)

// Fallback map center (Slovakia) when no parcel geometry parses.
const (
	defaultCenterLat = 48.6690
	defaultCenterLon = 19.6990
)

type mapCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type parcelMapResp struct {
	Center     mapCenter                  `json:"center"`
	Skipped    int                        `json:"skipped"` // parcels dropped for unparseable geometry
	Collection *geojson.FeatureCollection `json:"collection"`
}

// handleRanking returns parcels ordered by mean yield percentage.
// ?order=worst flips to the weakest parcels, ?limit caps the list (default 10).
func (a *App) handleRanking(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	limit := 10
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	worst := r.URL.Query().Get("order") == "worst"
	writeJSON(w, analysis.RankParcels(ds.Records, limit, worst))
}

// handleParcelMap returns a GeoJSON FeatureCollection of per-parcel
// performance. A parcel whose geometry text does not parse is skipped and
// counted; it never fails the view.
func (a *App) handleParcelMap(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}

	resp := parcelMapResp{
		Center:     mapCenter{Lat: defaultCenterLat, Lon: defaultCenterLon},
		Collection: &geojson.FeatureCollection{Features: []*geojson.Feature{}},
	}

	var lonSum, latSum float64
	for _, st := range analysis.ParcelMapStats(ds.Records) {
		g, err := dataset.ParseWKT(st.WKT)
		if err != nil {
			log.Printf("parcel %q: skipping geometry: %v", st.Name, err)
			resp.Skipped++
			continue
		}
		lon, lat := dataset.BoundsCenter(g)
		lonSum += lon
		latSum += lat

		props := map[string]interface{}{
			"name":               st.Name,
			"parcelId":           st.ParcelID,
			"avgYieldPercentage": st.AvgYieldPercentage,
			"avgYieldHa":         st.AvgYieldHa,
			"records":            st.Records,
			"class":              string(st.Class),
		}
		if st.Area != nil {
			props["areaHa"] = *st.Area
		}
		resp.Collection.Features = append(resp.Collection.Features, &geojson.Feature{
			ID:         st.ParcelID,
			Geometry:   g,
			Properties: props,
		})
	}

	if n := len(resp.Collection.Features); n > 0 {
		resp.Center = mapCenter{Lat: latSum / float64(n), Lon: lonSum / float64(n)}
	}
	writeJSON(w, resp)
}
