package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/schedule-extractor/constants"
	"github.com/joseph-ayodele/schedule-extractor/internal/entity"
)

// WriteXLSX returns an XLSX workbook (as bytes) holding the schedule table.
func WriteXLSX(recs []entity.ScheduleRecord) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Schedule"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 && sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range constants.CSVHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, r := range recs {
		for col, v := range r.Row() {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// widen columns for readability
	_ = f.SetColWidth(sheet, "A", "A", 22) // date
	_ = f.SetColWidth(sheet, "B", "B", 22) // time slots
	_ = f.SetColWidth(sheet, "C", "C", 48) // session
	_ = f.SetColWidth(sheet, "D", "D", 30) // speaker
	_ = f.SetColWidth(sheet, "E", "E", 30) // location

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
