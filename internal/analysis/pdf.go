package analysis

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/JustJay7/appeal-case-manager/internal/database"
)

// RenderPDF renders a barrister report into a downloadable PDF document.
func RenderPDF(report *database.BarristerReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.MultiCell(0, 8, report.ReportTitle, "", "C", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated by %s on %s",
		report.GeneratedBy, report.GeneratedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	sections := []struct {
		heading string
		body    string
	}{
		{"Executive Summary", report.ExecutiveSummary},
		{"Grounds Identified", report.GroundsIdentified},
		{"Legal Analysis", report.LegalAnalysisSummary},
		{"Recommendations", report.Recommendations},
	}

	for _, section := range sections {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, section.heading, "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, section.body, "", "", false)
		pdf.Ln(4)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}
