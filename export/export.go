// Package export serializes the normalized table: every original column plus
// yield_percentage, the exact row set, no silent drops. Labels are Slovak
// and non-ASCII, so everything stays UTF-8.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"parcelyield/models"
)

// Columns of both export formats, in source order plus the derived score.
var header = []string{"parcel_id", "name", "year", "crop", "yield_ha", "area", "geometry", "yield_percentage"}

// SheetName is the XLSX sheet holding the table.
const SheetName = "Výnosy"

// WriteCSV writes the normalized table as delimited text. A UTF-8 BOM leads
// the stream so spreadsheet software opens the Slovak labels correctly.
func WriteCSV(w io.Writer, records []models.NormalizedRecord) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ParcelID,
			r.ParcelName,
			intCell(r.Year),
			r.Crop,
			floatCell(r.YieldHa),
			floatPtrCell(r.Area),
			r.WKT,
			floatCell(r.YieldPercentage),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the normalized table as a single-sheet workbook.
func WriteXLSX(w io.Writer, records []models.NormalizedRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetName)
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetName, cell, h)
		f.SetColWidth(SheetName, cell, cell, 16)
	}

	for i, r := range records {
		row := i + 2
		f.SetCellValue(SheetName, fmt.Sprintf("A%d", row), r.ParcelID)
		f.SetCellValue(SheetName, fmt.Sprintf("B%d", row), r.ParcelName)
		if r.Year != nil {
			f.SetCellValue(SheetName, fmt.Sprintf("C%d", row), *r.Year)
		}
		f.SetCellValue(SheetName, fmt.Sprintf("D%d", row), r.Crop)
		f.SetCellValue(SheetName, fmt.Sprintf("E%d", row), r.YieldHa)
		if r.Area != nil {
			f.SetCellValue(SheetName, fmt.Sprintf("F%d", row), *r.Area)
		}
		f.SetCellValue(SheetName, fmt.Sprintf("G%d", row), r.WKT)
		f.SetCellValue(SheetName, fmt.Sprintf("H%d", row), r.YieldPercentage)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatCell(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func floatPtrCell(v *float64) string {
	if v == nil {
		return ""
	}
	return floatCell(*v)
}
