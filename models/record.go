package models

// YieldRecord — one row of the source table after type coercion.
// ParcelName is normalized to a trimmed string at load time because the
// source mixes numeric and textual labels in the same column.
// Year and Area stay nil when the source cell does not parse; only a
// non-positive or non-numeric yield excludes a row from the dataset.
type YieldRecord struct {
	ParcelID   string   `json:"parcelId"`
	ParcelName string   `json:"name"`
	Year       *int     `json:"year,omitempty"`
	Crop       string   `json:"crop"`
	YieldHa    float64  `json:"yieldHa"` // tons/ha, always > 0 after loading
	Area       *float64 `json:"areaHa,omitempty"`
	WKT        string   `json:"-"` // raw POLYGON/MULTIPOLYGON text, may be empty
}

// NormalizedRecord is a YieldRecord with its cohort-relative score attached.
// 100 means average performance for the record's (year, crop) cohort.
type NormalizedRecord struct {
	YieldRecord
	YieldPercentage float64 `json:"yieldPercentage"`
}

// HasGeometry reports whether the record carries a geometry string at all.
// Whether that string parses is the map renderer's problem, not the loader's.
func (r YieldRecord) HasGeometry() bool { return r.WKT != "" }
