package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	model "github.com/nagagroupsnewfamous-hub/salon-backend/internal/models"
)

// YearReport рендерит годовой отчет в PDF
func YearReport(report model.YearReport) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, "New Famous Hairstyle", "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, "Yearly Business Report - "+report.Year, "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 8, fmt.Sprintf("Total Services: %d", report.TotalServices), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, fmt.Sprintf("Total Revenue: Rs %.2f", report.TotalRevenue), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, fmt.Sprintf("Free Services Given: %d", report.FreeServices), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, "Monthly Breakdown:", "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 12)
	for _, m := range report.MonthlyBreakdown {
		line := fmt.Sprintf("%s  |  Services: %d  |  Revenue: Rs %.2f", m.Month, m.TotalServices, m.TotalRevenue)
		doc.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	err := doc.Output(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
