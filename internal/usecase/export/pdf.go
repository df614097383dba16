package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/johnquangdev/transcript-processor/internal/domain/entities"
)

// Action item table column widths in millimeters (A4, default margins)
var actionTableWidths = [4]float64{80, 35, 45, 30}

// RenderPdf renders a MinutesRecord as a PDF byte buffer
func RenderPdf(rec *entities.MinutesRecord) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 14, docTitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Metadata
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range metadataLines(rec) {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	for _, sec := range buildSections(rec) {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(0, 0, 139)
		pdf.CellFormat(0, 9, sec.Heading, "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 11)
		for _, bullet := range sec.Bullets {
			pdf.MultiCell(0, 6, "- "+bullet, "", "L", false)
		}
		pdf.Ln(5)
	}

	if rows := actionTableRows(rec); len(rows) > 0 {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(0, 0, 139)
		pdf.CellFormat(0, 9, "Action Items", "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)

		// Header row
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(0, 0, 139)
		pdf.SetTextColor(245, 245, 245)
		for i, h := range actionTableHeader {
			pdf.CellFormat(actionTableWidths[i], 8, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		// Data rows
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFillColor(245, 245, 220)
		for _, row := range rows {
			for i, cell := range row {
				pdf.CellFormat(actionTableWidths[i], 7, cell, "1", 0, "L", true, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build pdf: %w", err)
	}
	return buf.Bytes(), nil
}
