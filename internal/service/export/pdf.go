package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

var pdfColWidths = []float64{24, 26, 52, 18, 20, 20, 18, 18, 70}

// RenderPDF implements ExportService.
func (e *ExportServiceImpl) RenderPDF(report MonthlyReport) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, reportTitle(report.Stats), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Summary block
	for _, pair := range summaryPairs(report) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(50, 6, pair[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 6, pair[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(68, 114, 196)
		pdf.SetTextColor(255, 255, 255)
		for i, header := range tableHeaders {
			pdf.CellFormat(pdfColWidths[i], 7, header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 8)
	}
	drawHeader()

	for _, day := range monthRows(report.Stats) {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			drawHeader()
		}
		values := []string{day.Date, day.Weekday, day.Status, day.Entry, day.LunchOut, day.LunchIn, day.Exit, day.Hours, day.Notes}
		for i, value := range values {
			pdf.CellFormat(pdfColWidths[i], 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
