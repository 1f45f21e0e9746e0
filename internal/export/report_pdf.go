// Package export renders read-only projections of the data model into
// downloadable documents: property reports (PDF and spreadsheet), invoices
// (PDF and a print-formatted HTML twin) and lease agreements.
package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/akeray/akeray-api/internal/models"
)

const (
	reportTitle    = "Akeray Property Management System"
	reportSubtitle = "Property Report"

	// Layout constants in PDF points (A4 portrait is 595x842).
	reportLeftMargin  = 50.0
	reportIndent      = 70.0
	reportCursorStart = 150.0
	reportTopMargin   = 50.0
	reportPageBottom  = 700.0
	reportBlockHeight = 90.0
)

// blockPos places one property block on the report.
type blockPos struct {
	page int // 1-based
	y    float64
}

// paginateBlocks walks the vertical cursor for count fixed-height blocks.
// The page break is checked before each block, never mid-block: when the
// cursor has moved past the page bottom the block starts a new page at the
// top margin.
func paginateBlocks(count int) []blockPos {
	positions := make([]blockPos, 0, count)
	page := 1
	y := reportCursorStart
	for i := 0; i < count; i++ {
		if y > reportPageBottom {
			page++
			y = reportTopMargin
		}
		positions = append(positions, blockPos{page: page, y: y})
		y += reportBlockHeight
	}
	return positions
}

func newReportDoc(subtitle string, now time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(reportLeftMargin, 65, reportTitle)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(reportLeftMargin, 92, subtitle)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(reportLeftMargin, 117, "Generated on: "+now.Format("1/2/2006"))
	return pdf
}

// PropertyReportPDF renders the property list into a paginated PDF document.
// Properties are emitted in input order; each block occupies a fixed vertical
// extent and is never split across pages.
func PropertyReportPDF(properties []models.Property, now time.Time) ([]byte, error) {
	pdf := buildPropertyReport(properties, now)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildPropertyReport is split from PropertyReportPDF so tests can inspect
// the resulting page count without parsing PDF bytes.
func buildPropertyReport(properties []models.Property, now time.Time) *gofpdf.Fpdf {
	pdf := newReportDoc(reportSubtitle, now)
	positions := paginateBlocks(len(properties))
	for i, property := range properties {
		pos := positions[i]
		for pdf.PageNo() < pos.page {
			pdf.AddPage()
		}
		drawPropertyBlock(pdf, i+1, &property, pos.y)
	}
	return pdf
}

func drawPropertyBlock(pdf *gofpdf.Fpdf, index int, p *models.Property, y float64) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(reportLeftMargin, y+12, fmt.Sprintf("%d. %s", index, p.Name))
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(reportIndent, y+30, "Address: "+p.Address+", "+p.City)
	pdf.Text(reportIndent, y+43, "Type: "+p.Type)
	pdf.Text(reportIndent, y+56, "Total Units: "+strconv.Itoa(p.TotalUnits))
	pdf.Text(reportIndent, y+69, "Price per Unit: "+formatAmount(p.PricePerUnit)+" ETB")
	pdf.Text(reportIndent, y+82, "Owner: "+p.Owner.FullName())
}
