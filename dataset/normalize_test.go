package dataset

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelyield/models"
)

func rec(year int, crop string, yield float64) models.YieldRecord {
	y := year
	return models.YieldRecord{ParcelID: "p", ParcelName: "p", Year: &y, Crop: crop, YieldHa: yield}
}

func TestNormalizeCohorts(t *testing.T) {
	records := []models.YieldRecord{
		rec(2020, "WHEAT", 4.0),
		rec(2020, "WHEAT", 6.0),
		rec(2021, "WHEAT", 5.0),
	}
	out := Normalize(records)
	require.Len(t, out, 3)

	// Cohort (2020, WHEAT) mean is 5.0.
	assert.Equal(t, 80.0, out[0].YieldPercentage)
	assert.Equal(t, 120.0, out[1].YieldPercentage)
	// Singleton cohort scores exactly 100, no tolerance needed.
	assert.Equal(t, 100.0, out[2].YieldPercentage)
}

func TestNormalizeKeyIsThePair(t *testing.T) {
	// Same crop different year, same year different crop: four cohorts of
	// one, so every record must score exactly 100. A leak across either
	// field alone would pull scores off 100.
	records := []models.YieldRecord{
		rec(2020, "WHEAT", 4.0),
		rec(2021, "WHEAT", 8.0),
		rec(2020, "CORN", 2.0),
		rec(2021, "CORN", 16.0),
	}
	for _, r := range Normalize(records) {
		assert.Equal(t, 100.0, r.YieldPercentage)
	}
}

func TestNormalizeCohortMeanIs100(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var records []models.YieldRecord
	for i := 0; i < 200; i++ {
		records = append(records, rec(2018+rng.Intn(4), []string{"WHEAT", "CORN", "RAPE"}[rng.Intn(3)], 1+rng.Float64()*9))
	}
	out := Normalize(records)

	sums := make(map[cohortKey]float64)
	counts := make(map[cohortKey]int)
	for _, r := range out {
		k := keyOf(r.YieldRecord)
		sums[k] += r.YieldPercentage
		counts[k]++
	}
	// Structural identity: every cohort's percentages average to 100.
	for k, sum := range sums {
		assert.InDelta(t, 100.0, sum/float64(counts[k]), 1e-9)
	}
}

func TestNormalizeOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var records []models.YieldRecord
	for i := 0; i < 50; i++ {
		r := rec(2020+i%3, "WHEAT", 1+rng.Float64()*5)
		r.ParcelID = string(rune('a' + i%26))
		records = append(records, r)
	}
	want := Normalize(records)
	byID := make(map[string][]float64)
	for _, r := range want {
		byID[key(r)] = append(byID[key(r)], r.YieldPercentage)
	}

	shuffled := append([]models.YieldRecord(nil), records...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	got := Normalize(shuffled)

	gotByID := make(map[string][]float64)
	for _, r := range got {
		gotByID[key(r)] = append(gotByID[key(r)], r.YieldPercentage)
	}
	require.Len(t, gotByID, len(byID))
	for k, wantPcts := range byID {
		assert.InDeltaSlice(t, wantPcts, gotByID[k], 1e-9, k)
	}
}

// key identifies a record uniquely enough for the order test fixture.
func key(r models.NormalizedRecord) string {
	return r.ParcelID + "|" + r.Crop + "|" + strconv.Itoa(*r.Year) + "|" + strconv.FormatFloat(r.YieldHa, 'g', -1, 64)
}

func TestNormalizeIdempotent(t *testing.T) {
	records := []models.YieldRecord{
		rec(2020, "WHEAT", 4.0),
		rec(2020, "WHEAT", 6.0),
		rec(2020, "WHEAT", 5.5),
	}
	first := Normalize(records)
	second := Normalize(records)
	require.Equal(t, first, second)
	// The input slice is untouched either way.
	assert.Equal(t, 4.0, records[0].YieldHa)
}

func TestNormalizeNilYearCohort(t *testing.T) {
	noYear := models.YieldRecord{ParcelName: "x", Crop: "WHEAT", YieldHa: 3.0}
	records := []models.YieldRecord{noYear, rec(2020, "WHEAT", 6.0)}
	out := Normalize(records)
	// A record without a year never borrows another cohort's mean.
	assert.Equal(t, 100.0, out[0].YieldPercentage)
	assert.Equal(t, 100.0, out[1].YieldPercentage)
}
