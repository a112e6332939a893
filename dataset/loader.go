package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"parcelyield/models"
)

// ErrMissingColumn is returned when the source header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// columnIndex maps the semantic columns onto header positions. Resolved once
// from the header row; lookups after that are plain slice indexing.
type columnIndex struct {
	parcelID int
	name     int
	year     int
	crop     int
	yieldHa  int
	area     int
	geometry int // -1 when the source has no geometry column
}

// header aliases seen across source exports. The id column in particular
// shows up under two names depending on the exporting system.
var columnAliases = map[string][]string{
	"parcel_id": {"parcel_id", "agev_parcel_id"},
	"name":      {"name", "parcel_name"},
	"year":      {"year"},
	"crop":      {"crop"},
	"yield_ha":  {"yield_ha"},
	"area":      {"area"},
	"geometry":  {"geometry"},
}

// Load reads the source CSV at path and returns the valid record set.
// An unreadable file is fatal to the caller's session: no dataset is returned.
func Load(path string) ([]models.YieldRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open yield data: %w", err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader parses CSV rows from r. A row is retained iff its yield_ha cell
// parses to a positive number; year and area coercion failures become missing
// values instead of rejections. Geometry is kept as raw text and never gates
// validity.
func LoadReader(r io.Reader) ([]models.YieldRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []models.YieldRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		yieldHa, ok := parseFloatCell(cell(row, idx.yieldHa))
		if !ok || yieldHa <= 0 {
			continue
		}

		rec := models.YieldRecord{
			ParcelID:   strings.TrimSpace(cell(row, idx.parcelID)),
			ParcelName: strings.TrimSpace(cell(row, idx.name)),
			Crop:       strings.TrimSpace(cell(row, idx.crop)),
			YieldHa:    yieldHa,
		}
		if y, ok := parseIntCell(cell(row, idx.year)); ok {
			rec.Year = &y
		}
		if a, ok := parseFloatCell(cell(row, idx.area)); ok {
			rec.Area = &a
		}
		if idx.geometry >= 0 {
			rec.WKT = strings.TrimSpace(cell(row, idx.geometry))
		}
		records = append(records, rec)
	}
	return records, nil
}

func resolveColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF") // UTF-8 BOM from spreadsheet exports
		}
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}

	find := func(col string) (int, bool) {
		for _, alias := range columnAliases[col] {
			if i, ok := pos[alias]; ok {
				return i, true
			}
		}
		return -1, false
	}

	var idx columnIndex
	required := []struct {
		col string
		dst *int
	}{
		{"parcel_id", &idx.parcelID},
		{"name", &idx.name},
		{"year", &idx.year},
		{"crop", &idx.crop},
		{"yield_ha", &idx.yieldHa},
		{"area", &idx.area},
	}
	for _, r := range required {
		i, ok := find(r.col)
		if !ok {
			return idx, fmt.Errorf("%w: %s", ErrMissingColumn, r.col)
		}
		*r.dst = i
	}
	if i, ok := find("geometry"); ok {
		idx.geometry = i
	} else {
		idx.geometry = -1
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseFloatCell(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

func parseIntCell(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	// Spreadsheet exports sometimes store years as "2020.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f), true
	}
	return 0, false
}
