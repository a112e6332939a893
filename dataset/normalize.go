package dataset

import "parcelyield/models"

// cohortKey joins records into their (year, crop) cohort. The pair is the
// key, never either field alone. Records without a parseable year form their
// own per-crop cohort rather than borrowing a reference mean.
type cohortKey struct {
	year    int
	hasYear bool
	crop    string
}

func keyOf(r models.YieldRecord) cohortKey {
	k := cohortKey{crop: r.Crop}
	if r.Year != nil {
		k.year = *r.Year
		k.hasYear = true
	}
	return k
}

// Normalize derives yield_percentage for every record: the record's yield
// relative to the arithmetic mean of its cohort, inclusive of the record
// itself. The input is not mutated; the result is a new slice in input order.
//
// The cohort mean of strictly positive yields is strictly positive, so the
// division cannot hit zero: the loader already dropped every yield_ha <= 0.
// A singleton cohort scores exactly 100 (x/x).
func Normalize(records []models.YieldRecord) []models.NormalizedRecord {
	sums := make(map[cohortKey]float64)
	counts := make(map[cohortKey]int)
	for _, r := range records {
		k := keyOf(r)
		sums[k] += r.YieldHa
		counts[k]++
	}

	out := make([]models.NormalizedRecord, len(records))
	for i, r := range records {
		k := keyOf(r)
		mean := sums[k] / float64(counts[k])
		out[i] = models.NormalizedRecord{
			YieldRecord:     r,
			YieldPercentage: r.YieldHa / mean * 100,
		}
	}
	return out
}
