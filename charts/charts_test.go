package charts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelyield/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestCropBoxplotPNG(t *testing.T) {
	byYear := []YearValues{
		{Year: 2020, Values: []float64{3.1, 4.2, 5.0, 4.4}},
		{Year: 2021, Values: []float64{4.9}},
	}
	var buf bytes.Buffer
	require.NoError(t, CropBoxplot(&buf, "PŠENICE OZ", byYear, 4.3))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestCropTrendPNG(t *testing.T) {
	trend := []models.YearTrendStats{
		{Year: 2019, Count: 3, Mean: 4.1, StdDev: 0.4},
		{Year: 2020, Count: 5, Mean: 4.6, StdDev: 0.7},
		{Year: 2021, Count: 4, Mean: 4.0, StdDev: 0.2},
	}
	var buf bytes.Buffer
	require.NoError(t, CropTrend(&buf, "KUKURICA", trend))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestCropTrendSingleYear(t *testing.T) {
	// One year: no band polygon, still a valid image.
	trend := []models.YearTrendStats{{Year: 2020, Count: 2, Mean: 4.6, StdDev: 0.7}}
	var buf bytes.Buffer
	require.NoError(t, CropTrend(&buf, "KUKURICA", trend))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestParcelRankingPNG(t *testing.T) {
	ranks := []models.ParcelRank{
		{Name: "Dolné pole", AvgYieldPercentage: 131.2, Records: 4},
		{Name: "Horný diel", AvgYieldPercentage: 104.9, Records: 6},
		{Name: "Pri potoku", AvgYieldPercentage: 78.3, Records: 2},
	}
	var buf bytes.Buffer
	require.NoError(t, ParcelRanking(&buf, "Top parcele", ranks))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}
