package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var tableHeaders = []string{"Date", "Weekday", "Status", "Entry", "Lunch Out", "Lunch In", "Exit", "Hours", "Notes"}

// RenderXLSX implements ExportService.
func (e *ExportServiceImpl) RenderXLSX(report MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Attendance"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create label style: %w", err)
	}

	// Title
	f.SetCellValue(sheetName, "A1", reportTitle(report.Stats))
	f.MergeCell(sheetName, "A1", "I1")
	f.SetCellStyle(sheetName, "A1", "I1", headerStyle)
	f.SetRowHeight(sheetName, 1, 25)

	// Summary block
	rowNum := 3
	for _, pair := range summaryPairs(report) {
		labelCell := fmt.Sprintf("A%d", rowNum)
		valueCell := fmt.Sprintf("B%d", rowNum)
		f.SetCellValue(sheetName, labelCell, pair[0])
		f.SetCellStyle(sheetName, labelCell, labelCell, labelStyle)
		f.SetCellValue(sheetName, valueCell, pair[1])
		rowNum++
	}

	// Per-day table
	rowNum++
	headerRow := rowNum
	for i, header := range tableHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cell name: %w", err)
		}
		f.SetCellValue(sheetName, cell, header)
	}
	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(tableHeaders), headerRow)
	firstHeaderCell, _ := excelize.CoordinatesToCellName(1, headerRow)
	f.SetCellStyle(sheetName, firstHeaderCell, lastHeaderCell, headerStyle)

	rowNum++
	for _, day := range monthRows(report.Stats) {
		values := []string{day.Date, day.Weekday, day.Status, day.Entry, day.LunchOut, day.LunchIn, day.Exit, day.Hours, day.Notes}
		for i, value := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cell name: %w", err)
			}
			f.SetCellValue(sheetName, cell, value)
		}
		rowNum++
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 24)
	f.SetColWidth(sheetName, "D", "H", 10)
	f.SetColWidth(sheetName, "I", "I", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
