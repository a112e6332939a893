package main

import (
	"encoding/json"
	"log"
	"net/http"

	"parcelyield/dataset"
)

type App struct {
	cfg   Config
	store *dataset.Store
}

func newApp(cfg Config) *App {
	return &App{
		cfg:   cfg,
		store: dataset.NewStore(cfg.DataPath),
	}
}

// data returns the cached dataset or writes a 503 and reports false.
// A load failure is fatal to the render pass: nothing downstream runs.
func (a *App) data(w http.ResponseWriter) (*dataset.Dataset, bool) {
	ds, err := a.store.Dataset()
	if err != nil {
		log.Println("dataset load error:", err)
		http.Error(w, "dataset unavailable", http.StatusServiceUnavailable)
		return nil, false
	}
	return ds, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
