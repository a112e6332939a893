package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelyield/models"
)

func TestCropSummary(t *testing.T) {
	area := 2.5
	records := []models.NormalizedRecord{
		nrec("A", 2020, "WHEAT", 4, 80),
		nrec("B", 2020, "WHEAT", 6, 120),
		nrec("A", 2020, "CORN", 9, 100),
	}
	records[0].Area = &area
	records[1].Area = &area

	sum, err := CropSummary(records, "WHEAT")
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Records)
	assert.Equal(t, 5.0, sum.AvgYieldHa)
	assert.Equal(t, 5.0, sum.TotalAreaHa)
	assert.Equal(t, 100.0, sum.AvgYieldPercentage)
}

func TestCropSummaryEmptySelection(t *testing.T) {
	_, err := CropSummary(nil, "WHEAT")
	require.ErrorIs(t, err, ErrEmptySelection)
}

func TestBoxplotByYear(t *testing.T) {
	records := []models.NormalizedRecord{
		nrec("A", 2020, "WHEAT", 1, 0),
		nrec("B", 2020, "WHEAT", 2, 0),
		nrec("C", 2020, "WHEAT", 3, 0),
		nrec("D", 2020, "WHEAT", 4, 0),
		nrec("A", 2021, "WHEAT", 7, 0),
	}
	box, err := BoxplotByYear(records, "WHEAT")
	require.NoError(t, err)
	assert.Equal(t, "WHEAT", box.Crop)
	assert.InDelta(t, 3.4, box.OverallMean, 1e-9)
	require.Len(t, box.Years, 2)

	y2020 := box.Years[0]
	assert.Equal(t, 2020, y2020.Year)
	assert.Equal(t, 4, y2020.Count)
	assert.Equal(t, 1.0, y2020.Min)
	assert.Equal(t, 4.0, y2020.Max)
	assert.Equal(t, 2.5, y2020.Median)
	assert.Equal(t, 2.5, y2020.Mean)
	assert.Less(t, y2020.Q1, y2020.Median)
	assert.Greater(t, y2020.Q3, y2020.Median)

	// Singleton year collapses the whole box onto the value.
	y2021 := box.Years[1]
	assert.Equal(t, 1, y2021.Count)
	assert.Equal(t, 7.0, y2021.Min)
	assert.Equal(t, 7.0, y2021.Q1)
	assert.Equal(t, 7.0, y2021.Median)
	assert.Equal(t, 7.0, y2021.Q3)
	assert.Equal(t, 7.0, y2021.Max)
}

func TestTrendByYear(t *testing.T) {
	records := []models.NormalizedRecord{
		nrec("A", 2020, "WHEAT", 4, 0),
		nrec("B", 2020, "WHEAT", 6, 0),
		nrec("A", 2021, "WHEAT", 5, 0),
	}
	trend, err := TrendByYear(records, "WHEAT")
	require.NoError(t, err)
	require.Len(t, trend, 2)

	assert.Equal(t, 2020, trend[0].Year)
	assert.Equal(t, 2, trend[0].Count)
	assert.Equal(t, 5.0, trend[0].Mean)
	// Sample stddev of {4, 6} is sqrt(2).
	assert.InDelta(t, 1.4142135, trend[0].StdDev, 1e-6)

	assert.Equal(t, 2021, trend[1].Year)
	assert.Equal(t, 0.0, trend[1].StdDev)
}

func TestTrendByYearEmptySelection(t *testing.T) {
	records := []models.NormalizedRecord{nrec("A", 2020, "WHEAT", 4, 0)}
	_, err := TrendByYear(records, "RYE")
	require.ErrorIs(t, err, ErrEmptySelection)
}
