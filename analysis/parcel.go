package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"parcelyield/models"
)

func filterParcel(records []models.NormalizedRecord, name string) []models.NormalizedRecord {
	var out []models.NormalizedRecord
	for _, r := range records {
		if r.ParcelName == name {
			out = append(out, r)
		}
	}
	return out
}

// ParcelGeometry returns the parcel's first recorded geometry text, matching
// the single boundary the parcel map draws. ok is false when the parcel has
// records but none carry geometry.
func ParcelGeometry(records []models.NormalizedRecord, parcel string) (wkt string, ok bool, err error) {
	found := false
	for _, r := range records {
		if r.ParcelName != parcel {
			continue
		}
		found = true
		if r.HasGeometry() {
			return r.WKT, true, nil
		}
	}
	if !found {
		return "", false, ErrEmptySelection
	}
	return "", false, nil
}

// Timeline builds the parcel's per-crop yield series over the years.
func Timeline(records []models.NormalizedRecord, parcel string) ([]models.CropSeries, error) {
	sel := filterParcel(records, parcel)
	if len(sel) == 0 {
		return nil, ErrEmptySelection
	}

	byCrop := make(map[string][]models.YearValue)
	for _, r := range sel {
		if r.Year == nil {
			continue
		}
		byCrop[r.Crop] = append(byCrop[r.Crop], models.YearValue{
			Year:            *r.Year,
			YieldHa:         r.YieldHa,
			YieldPercentage: r.YieldPercentage,
		})
	}

	crops := make([]string, 0, len(byCrop))
	for c := range byCrop {
		crops = append(crops, c)
	}
	sort.Strings(crops)

	out := make([]models.CropSeries, 0, len(crops))
	for _, c := range crops {
		points := byCrop[c]
		sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
		out = append(out, models.CropSeries{Crop: c, Points: points})
	}
	return out, nil
}

// CompareCrops aggregates the parcel's records per crop for the comparison
// chart: mean/std yield, mean percentage, mean area and the record count.
func CompareCrops(records []models.NormalizedRecord, parcel string) ([]models.CropComparison, error) {
	sel := filterParcel(records, parcel)
	if len(sel) == 0 {
		return nil, ErrEmptySelection
	}

	type acc struct {
		yields, pcts, areas []float64
	}
	byCrop := make(map[string]*acc)
	for _, r := range sel {
		a := byCrop[r.Crop]
		if a == nil {
			a = &acc{}
			byCrop[r.Crop] = a
		}
		a.yields = append(a.yields, r.YieldHa)
		a.pcts = append(a.pcts, r.YieldPercentage)
		if r.Area != nil {
			a.areas = append(a.areas, *r.Area)
		}
	}

	crops := make([]string, 0, len(byCrop))
	for c := range byCrop {
		crops = append(crops, c)
	}
	sort.Strings(crops)

	out := make([]models.CropComparison, 0, len(crops))
	for _, c := range crops {
		a := byCrop[c]
		meanYield, _ := stats.Mean(a.yields)
		meanPct, _ := stats.Mean(a.pcts)
		std := 0.0
		if len(a.yields) > 1 {
			std, _ = stats.StandardDeviationSample(a.yields)
		}
		meanArea := 0.0
		if len(a.areas) > 0 {
			meanArea, _ = stats.Mean(a.areas)
		}
		out = append(out, models.CropComparison{
			Crop:               c,
			Years:              len(a.yields),
			AvgYieldHa:         meanYield,
			StdYieldHa:         std,
			AvgYieldPercentage: meanPct,
			AvgAreaHa:          meanArea,
		})
	}
	return out, nil
}

// Radar axis maxima. Fixed so radars of different parcels stay comparable.
var radarMaxima = []struct {
	label string
	max   float64
}{
	{"Priemerná výnosnosť (%)", 150},
	{"Stabilita výnosov", 100},
	{"Počet plodín", 10},
	{"Priemerná plocha (ha)", 20},
	{"Trend výnosov (%)", 20},
}

// Radar computes the parcel performance radar: mean yield percentage, yield
// stability (100 minus the coefficient of variation), crop variety, mean
// area and the mean year-over-year yield change. Raw values are normalized
// to 0..100 against the fixed axis maxima.
func Radar(records []models.NormalizedRecord, parcel string) (models.RadarMetrics, error) {
	sel := filterParcel(records, parcel)
	if len(sel) == 0 {
		return models.RadarMetrics{}, ErrEmptySelection
	}

	var yields, pcts, areas []float64
	crops := make(map[string]struct{})
	yearSums := make(map[int]float64)
	yearCounts := make(map[int]int)
	for _, r := range sel {
		yields = append(yields, r.YieldHa)
		pcts = append(pcts, r.YieldPercentage)
		crops[r.Crop] = struct{}{}
		if r.Area != nil {
			areas = append(areas, *r.Area)
		}
		if r.Year != nil {
			yearSums[*r.Year] += r.YieldHa
			yearCounts[*r.Year]++
		}
	}

	meanPct, _ := stats.Mean(pcts)
	meanYield, _ := stats.Mean(yields)
	stability := 100.0
	if len(yields) > 1 && meanYield > 0 {
		std, _ := stats.StandardDeviationSample(yields)
		stability = 100 - std/meanYield*100
	}
	meanArea := 0.0
	if len(areas) > 0 {
		meanArea, _ = stats.Mean(areas)
	}

	values := []float64{
		meanPct,
		stability,
		float64(len(crops)),
		meanArea,
		yearTrendPct(yearSums, yearCounts),
	}

	out := models.RadarMetrics{Parcel: parcel}
	for i, m := range radarMaxima {
		out.Axes = append(out.Axes, models.RadarAxis{
			Label:      m.label,
			Value:      values[i],
			Normalized: clamp(values[i]/m.max*100, 0, 100),
		})
	}
	return out, nil
}

// yearTrendPct is the mean relative change of the per-year mean yield,
// in percent. Zero when fewer than two years are present.
func yearTrendPct(sums map[int]float64, counts map[int]int) float64 {
	years := make([]int, 0, len(sums))
	for y := range sums {
		years = append(years, y)
	}
	if len(years) < 2 {
		return 0
	}
	sort.Ints(years)

	var total float64
	var n int
	prev := sums[years[0]] / float64(counts[years[0]])
	for _, y := range years[1:] {
		curr := sums[y] / float64(counts[y])
		if prev > 0 {
			total += (curr - prev) / prev * 100
			n++
		}
		prev = curr
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
