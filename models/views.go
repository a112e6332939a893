package models

// View DTOs. Every aggregation here reads yieldPercentage as an opaque
// per-record score; none of them mutate the normalized table.

// OverviewStats — the dashboard header numbers.
type OverviewStats struct {
	Records  int  `json:"records"`
	Parcels  int  `json:"parcels"`
	Crops    int  `json:"crops"`
	YearFrom int  `json:"yearFrom"`
	YearTo   int  `json:"yearTo"`
	HasYears bool `json:"hasYears"`
}

// ParcelRank — one bar of the top/worst parcels chart.
type ParcelRank struct {
	Name               string  `json:"name"`
	AvgYieldPercentage float64 `json:"avgYieldPercentage"`
	Records            int     `json:"records"`
}

// PerformanceClass buckets a parcel's mean yield percentage for the map.
type PerformanceClass string

const (
	PerformanceLow  PerformanceClass = "red"    // < 80 %
	PerformanceMid  PerformanceClass = "orange" // < 100 %
	PerformanceHigh PerformanceClass = "green"  // >= 100 %
)

// ParcelMapStat — per-parcel aggregate behind one map polygon.
type ParcelMapStat struct {
	Name               string           `json:"name"`
	ParcelID           string           `json:"parcelId"`
	Area               *float64         `json:"areaHa,omitempty"`
	AvgYieldPercentage float64          `json:"avgYieldPercentage"`
	AvgYieldHa         float64          `json:"avgYieldHa"`
	Records            int              `json:"records"`
	Class              PerformanceClass `json:"class"`
	WKT                string           `json:"-"`
}

// CropSummary — header metrics for the crop view.
type CropSummary struct {
	Crop               string  `json:"crop"`
	Records            int     `json:"records"`
	AvgYieldHa         float64 `json:"avgYieldHa"`
	TotalAreaHa        float64 `json:"totalAreaHa"`
	AvgYieldPercentage float64 `json:"avgYieldPercentage"`
}

// YearBoxStats — five-number summary of yields for one year of one crop.
type YearBoxStats struct {
	Year    int     `json:"year"`
	Count   int     `json:"count"`
	Min     float64 `json:"min"`
	Q1      float64 `json:"q1"`
	Median  float64 `json:"median"`
	Q3      float64 `json:"q3"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
}

// CropBoxplot — yearly distributions plus the whole-period mean line.
type CropBoxplot struct {
	Crop        string         `json:"crop"`
	OverallMean float64        `json:"overallMean"`
	Years       []YearBoxStats `json:"years"`
}

// YearTrendStats — one point of the crop trend line with its ±1σ band.
type YearTrendStats struct {
	Year    int     `json:"year"`
	Count   int     `json:"count"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"stdDev"` // sample stddev; 0 for a single record
}

// YearValue — one observation on a parcel timeline.
type YearValue struct {
	Year            int     `json:"year"`
	YieldHa         float64 `json:"yieldHa"`
	YieldPercentage float64 `json:"yieldPercentage"`
}

// CropSeries — the per-crop line of a parcel timeline.
type CropSeries struct {
	Crop   string      `json:"crop"`
	Points []YearValue `json:"points"`
}

// CropComparison — one crop's aggregate row on a parcel card.
type CropComparison struct {
	Crop               string  `json:"crop"`
	Years              int     `json:"years"`
	AvgYieldHa         float64 `json:"avgYieldHa"`
	StdYieldHa         float64 `json:"stdYieldHa"`
	AvgYieldPercentage float64 `json:"avgYieldPercentage"`
	AvgAreaHa          float64 `json:"avgAreaHa"`
}

// RadarAxis — one spoke of the parcel performance radar, with the raw
// metric and its 0..100 normalization against a fixed axis maximum.
type RadarAxis struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Normalized float64 `json:"normalized"`
}

// RadarMetrics — the parcel performance radar.
type RadarMetrics struct {
	Parcel string      `json:"parcel"`
	Axes   []RadarAxis `json:"axes"`
}

// AnovaResult — one-way ANOVA across crop yields. When there are not
// enough eligible groups the result is informational, never an error.
type AnovaResult struct {
	Eligible    bool    `json:"eligible"`
	Message     string  `json:"message,omitempty"`
	Groups      int     `json:"groups"`
	FStatistic  float64 `json:"fStatistic,omitempty"`
	PValue      float64 `json:"pValue,omitempty"`
	Significant bool    `json:"significant"`
}
