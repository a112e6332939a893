package main

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"parcelyield/export"
)

// handleExportCSV streams the full normalized table as UTF-8 delimited text.
func (a *App) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	name := fmt.Sprintf("vynosy_analyza_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if err := export.WriteCSV(w, ds.Records); err != nil {
		log.Println("csv export error:", err)
	}
}

// handleExportXLSX streams the full normalized table as a workbook. Built in
// memory first so an encoding failure still gets a clean error status.
func (a *App) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.data(w)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, ds.Records); err != nil {
		log.Println("xlsx export error:", err)
		http.Error(w, "export error", http.StatusInternalServerError)
		return
	}
	name := fmt.Sprintf("vynosy_analyza_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = buf.WriteTo(w)
}
