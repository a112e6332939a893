// Package analysis turns the normalized yield table into the per-view
// aggregates the dashboard renders. Every function here is a pure, read-only
// pass over the record slice; selection comes in as plain arguments.
package analysis

import (
	"errors"
	"sort"

	"github.com/montanaflynn/stats"

	"parcelyield/models"
)

// ErrEmptySelection is returned when a crop/parcel selection matches no
// records. Handlers recover it per view; it never aborts the session.
var ErrEmptySelection = errors.New("no records for selection")

// Overview computes the dashboard header metrics.
func Overview(records []models.NormalizedRecord) models.OverviewStats {
	parcels := make(map[string]struct{})
	crops := make(map[string]struct{})
	out := models.OverviewStats{Records: len(records)}
	for _, r := range records {
		parcels[r.ParcelID] = struct{}{}
		crops[r.Crop] = struct{}{}
		if r.Year == nil {
			continue
		}
		y := *r.Year
		if !out.HasYears || y < out.YearFrom {
			out.YearFrom = y
		}
		if !out.HasYears || y > out.YearTo {
			out.YearTo = y
		}
		out.HasYears = true
	}
	out.Parcels = len(parcels)
	out.Crops = len(crops)
	return out
}

// RankParcels orders parcels by mean yield percentage. worst=false gives the
// top performers first, worst=true the weakest first. Ties break on name so
// the ranking is stable across reloads.
func RankParcels(records []models.NormalizedRecord, limit int, worst bool) []models.ParcelRank {
	byName := make(map[string][]float64)
	for _, r := range records {
		byName[r.ParcelName] = append(byName[r.ParcelName], r.YieldPercentage)
	}

	ranks := make([]models.ParcelRank, 0, len(byName))
	for name, pcts := range byName {
		mean, _ := stats.Mean(pcts)
		ranks = append(ranks, models.ParcelRank{
			Name:               name,
			AvgYieldPercentage: mean,
			Records:            len(pcts),
		})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].AvgYieldPercentage != ranks[j].AvgYieldPercentage {
			if worst {
				return ranks[i].AvgYieldPercentage < ranks[j].AvgYieldPercentage
			}
			return ranks[i].AvgYieldPercentage > ranks[j].AvgYieldPercentage
		}
		return ranks[i].Name < ranks[j].Name
	})
	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}

// ParcelMapStats aggregates records per parcel for the performance map.
// Parcels without any geometry text are excluded here; parcels whose text
// fails to parse are the map renderer's to skip. One feature per parcel:
// when the geometry text varies across rows the first seen wins, the stats
// still cover every row.
func ParcelMapStats(records []models.NormalizedRecord) []models.ParcelMapStat {
	type acc struct {
		stat    models.ParcelMapStat
		pctSum  float64
		yldSum  float64
		records int
	}
	byKey := make(map[string]*acc)
	var order []string
	for _, r := range records {
		if !r.HasGeometry() {
			continue
		}
		key := r.ParcelName + "\x00" + r.ParcelID
		a, ok := byKey[key]
		if !ok {
			a = &acc{stat: models.ParcelMapStat{
				Name:     r.ParcelName,
				ParcelID: r.ParcelID,
				Area:     r.Area,
				WKT:      r.WKT,
			}}
			byKey[key] = a
			order = append(order, key)
		}
		a.pctSum += r.YieldPercentage
		a.yldSum += r.YieldHa
		a.records++
	}
	sort.Strings(order)

	out := make([]models.ParcelMapStat, 0, len(order))
	for _, key := range order {
		a := byKey[key]
		a.stat.Records = a.records
		a.stat.AvgYieldPercentage = a.pctSum / float64(a.records)
		a.stat.AvgYieldHa = a.yldSum / float64(a.records)
		a.stat.Class = classify(a.stat.AvgYieldPercentage)
		out = append(out, a.stat)
	}
	return out
}

func classify(avgPct float64) models.PerformanceClass {
	switch {
	case avgPct < 80:
		return models.PerformanceLow
	case avgPct < 100:
		return models.PerformanceMid
	default:
		return models.PerformanceHigh
	}
}
