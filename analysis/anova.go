package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"parcelyield/models"
)

// minGroupSize is the record count a crop needs to enter the ANOVA.
const minGroupSize = 5

// OneWayANOVA tests whether mean yields differ across crops. Crops with
// fewer than minGroupSize records are left out; with fewer than two groups
// remaining the result is informational, not an error. Significance is read
// at the usual 0.05 level.
func OneWayANOVA(records []models.NormalizedRecord) models.AnovaResult {
	byCrop := make(map[string][]float64)
	for _, r := range records {
		byCrop[r.Crop] = append(byCrop[r.Crop], r.YieldHa)
	}
	groups := make([][]float64, 0, len(byCrop))
	for _, vals := range byCrop {
		if len(vals) >= minGroupSize {
			groups = append(groups, vals)
		}
	}
	if len(groups) < 2 {
		return models.AnovaResult{
			Eligible: false,
			Groups:   len(groups),
			Message:  fmt.Sprintf("need at least 2 crops with %d+ records, have %d", minGroupSize, len(groups)),
		}
	}

	var grandSum float64
	var n int
	for _, g := range groups {
		for _, v := range g {
			grandSum += v
		}
		n += len(g)
	}
	grandMean := grandSum / float64(n)

	var ssBetween, ssWithin float64
	for _, g := range groups {
		var sum float64
		for _, v := range g {
			sum += v
		}
		mean := sum / float64(len(g))
		ssBetween += float64(len(g)) * (mean - grandMean) * (mean - grandMean)
		for _, v := range g {
			ssWithin += (v - mean) * (v - mean)
		}
	}

	dfBetween := float64(len(groups) - 1)
	dfWithin := float64(n - len(groups))
	if ssWithin == 0 || dfWithin <= 0 {
		return models.AnovaResult{
			Eligible: false,
			Groups:   len(groups),
			Message:  "degenerate groups: no within-group variance",
		}
	}

	f := (ssBetween / dfBetween) / (ssWithin / dfWithin)
	p := 1 - distuv.F{D1: dfBetween, D2: dfWithin}.CDF(f)

	return models.AnovaResult{
		Eligible:    true,
		Groups:      len(groups),
		FStatistic:  f,
		PValue:      p,
		Significant: p < 0.05,
	}
}
