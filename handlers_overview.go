package main

import (
	"net/http"

	"parcelyield/analysis"
)

// handleOverview returns the dashboard header metrics.
func (a *App) handleOverview(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	writeJSON(w, analysis.Overview(ds.Records))
}

// handleListCrops returns the crop selector options.
func (a *App) handleListCrops(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	writeJSON(w, listResp{Items: ds.Crops})
}

// handleListParcels returns the parcel selector options.
func (a *App) handleListParcels(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	writeJSON(w, listResp{Items: ds.Parcels})
}

// handleReload drops the cache; the next request re-reads the source file.
func (a *App) handleReload(w http.ResponseWriter, r *http.Request) {
	a.store.Invalidate()
	writeJSON(w, okResp{OK: true})
}
