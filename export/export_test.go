package export

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"parcelyield/dataset"
	"parcelyield/models"
)

func fixture(n int) []models.NormalizedRecord {
	var raw []models.YieldRecord
	for i := 0; i < n; i++ {
		year := 2018 + i%4
		area := 1.5 + float64(i%7)
		raw = append(raw, models.YieldRecord{
			ParcelID:   strconv.Itoa(i),
			ParcelName: fmt.Sprintf("Pole č. %d", i),
			Year:       &year,
			Crop:       []string{"PŠENICE OZ", "KUKURICA", "REPKA OZ"}[i%3],
			YieldHa:    1 + float64(i%13)*0.37,
			Area:       &area,
		})
	}
	return dataset.Normalize(raw)
}

func TestCSVRoundTrip(t *testing.T) {
	records := fixture(100)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))

	// Re-parsing the export recovers the exact row set and scores.
	reloaded, err := dataset.LoadReader(&buf)
	require.NoError(t, err)
	require.Len(t, reloaded, len(records))

	renormalized := dataset.Normalize(reloaded)
	for i := range records {
		assert.Equal(t, records[i].ParcelName, renormalized[i].ParcelName)
		assert.InDelta(t, records[i].YieldPercentage, renormalized[i].YieldPercentage, 1e-9)
	}
}

func TestCSVMissingValuesStayEmpty(t *testing.T) {
	rec := models.NormalizedRecord{
		YieldRecord:     models.YieldRecord{ParcelID: "1", ParcelName: "X", Crop: "RAŽ", YieldHa: 2.0},
		YieldPercentage: 100,
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []models.NormalizedRecord{rec}))
	assert.Contains(t, buf.String(), "1,X,,RAŽ,2,,,100")
}

func TestXLSXRoundTrip(t *testing.T) {
	records := fixture(25)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1)
	assert.Equal(t, header, rows[0])

	// Spot-check one row's score survives the workbook.
	got, err := f.GetCellValue(SheetName, "H2")
	require.NoError(t, err)
	pct, err := strconv.ParseFloat(got, 64)
	require.NoError(t, err)
	assert.InDelta(t, records[0].YieldPercentage, pct, 1e-6)
}
