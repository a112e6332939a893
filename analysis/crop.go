package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"parcelyield/models"
)

func filterCrop(records []models.NormalizedRecord, crop string) []models.NormalizedRecord {
	var out []models.NormalizedRecord
	for _, r := range records {
		if r.Crop == crop {
			out = append(out, r)
		}
	}
	return out
}

// CropSummary computes the crop view header: mean yield, total area and mean
// yield percentage over every record of the crop.
func CropSummary(records []models.NormalizedRecord, crop string) (models.CropSummary, error) {
	sel := filterCrop(records, crop)
	if len(sel) == 0 {
		return models.CropSummary{}, ErrEmptySelection
	}

	var yields, pcts []float64
	var area float64
	for _, r := range sel {
		yields = append(yields, r.YieldHa)
		pcts = append(pcts, r.YieldPercentage)
		if r.Area != nil {
			area += *r.Area
		}
	}
	meanYield, _ := stats.Mean(yields)
	meanPct, _ := stats.Mean(pcts)
	return models.CropSummary{
		Crop:               crop,
		Records:            len(sel),
		AvgYieldHa:         meanYield,
		TotalAreaHa:        area,
		AvgYieldPercentage: meanPct,
	}, nil
}

// yieldsByYear groups a crop's yields per year, dropping records without a
// parseable year. Years come back sorted ascending.
func yieldsByYear(records []models.NormalizedRecord, crop string) ([]int, map[int][]float64) {
	byYear := make(map[int][]float64)
	for _, r := range records {
		if r.Crop != crop || r.Year == nil {
			continue
		}
		byYear[*r.Year] = append(byYear[*r.Year], r.YieldHa)
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years, byYear
}

// BoxplotByYear computes the crop's per-year five-number summaries plus the
// whole-period mean used for the reference line.
func BoxplotByYear(records []models.NormalizedRecord, crop string) (models.CropBoxplot, error) {
	years, byYear := yieldsByYear(records, crop)
	if len(years) == 0 {
		return models.CropBoxplot{}, ErrEmptySelection
	}

	var all []float64
	out := models.CropBoxplot{Crop: crop}
	for _, y := range years {
		vals := byYear[y]
		all = append(all, vals...)

		if len(vals) == 1 {
			v := vals[0]
			out.Years = append(out.Years, models.YearBoxStats{
				Year: y, Count: 1, Min: v, Q1: v, Median: v, Q3: v, Max: v, Mean: v,
			})
			continue
		}

		min, _ := stats.Min(vals)
		max, _ := stats.Max(vals)
		mean, _ := stats.Mean(vals)
		q, _ := stats.Quartile(vals)
		out.Years = append(out.Years, models.YearBoxStats{
			Year:   y,
			Count:  len(vals),
			Min:    min,
			Q1:     q.Q1,
			Median: q.Q2,
			Q3:     q.Q3,
			Max:    max,
			Mean:   mean,
		})
	}
	out.OverallMean, _ = stats.Mean(all)
	return out, nil
}

// TrendByYear computes the crop's yearly mean yield with its sample standard
// deviation, the basis of the trend line and its ±1σ band.
func TrendByYear(records []models.NormalizedRecord, crop string) ([]models.YearTrendStats, error) {
	years, byYear := yieldsByYear(records, crop)
	if len(years) == 0 {
		return nil, ErrEmptySelection
	}

	out := make([]models.YearTrendStats, 0, len(years))
	for _, y := range years {
		vals := byYear[y]
		mean, _ := stats.Mean(vals)
		std := 0.0
		if len(vals) > 1 {
			std, _ = stats.StandardDeviationSample(vals)
		}
		out = append(out, models.YearTrendStats{
			Year:   y,
			Count:  len(vals),
			Mean:   mean,
			StdDev: std,
		})
	}
	return out, nil
}
