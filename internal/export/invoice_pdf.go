package export

import (
	"bytes"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

const (
	invoicePageWidth = 595.28 // A4 portrait, points
	invoiceLeft      = 50.0
	invoiceRight     = invoicePageWidth - 50.0
	invoiceRightCol  = invoicePageWidth - 220.0
)

type amountRow struct {
	Label string
	Value string
}

// invoiceAmountRows lists the amount-table line items in render order: the
// base charge, then a VAT row only when a positive VAT amount was supplied.
// The total row is drawn separately and always carries the caller's figure.
func invoiceAmountRows(data InvoiceData) []amountRow {
	f := data.Financial
	rows := []amountRow{
		{lineItemDescription(data.Type), formatAmount(f.BaseAmount) + " " + f.Currency},
	}
	if f.VATAmount > 0 {
		rows = append(rows, amountRow{"VAT (15%)", formatAmount(f.VATAmount) + " " + f.Currency})
	}
	return rows
}

// InvoicePDF renders InvoiceData into a downloadable PDF. The layout mirrors
// InvoicePrintHTML field for field; both renderers consume identical input
// and must stay in sync.
func InvoicePDF(data InvoiceData, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()

	centered := func(y float64, size float64, style, text string) {
		pdf.SetFont("Helvetica", style, size)
		pdf.Text(invoicePageWidth/2-pdf.GetStringWidth(text)/2, y, text)
	}
	rightAligned := func(x, y float64, text string) {
		pdf.Text(x-pdf.GetStringWidth(text), y, text)
	}

	// Header
	centered(60, 20, "B", "INVOICE")
	centered(85, 16, "B", data.Business.Name)
	centered(102, 10, "", "TIN: "+data.Business.TinNumber)

	// From / Invoice Details columns
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(invoiceLeft, 140, "From:")
	pdf.Text(invoiceRightCol, 140, "Invoice Details:")
	pdf.SetFont("Helvetica", "", 11)
	fromLines := []string{
		data.Business.Name,
		data.Business.OwnerName,
		"TIN: " + data.Business.TinNumber,
		data.Business.Address,
		data.Business.Phone,
		data.Business.Email,
	}
	detailLines := []string{
		"Invoice #: " + data.InvoiceNumber,
		"Date: " + data.InvoiceDate,
		"Due Date: " + data.DueDate,
		"Type: " + titleCase(data.Type),
		"Status: " + strings.ToUpper(data.Status),
	}
	y := 158.0
	for _, line := range fromLines {
		pdf.Text(invoiceLeft, y, line)
		y += 16
	}
	dy := 158.0
	for _, line := range detailLines {
		pdf.Text(invoiceRightCol, dy, line)
		dy += 16
	}

	// To block
	y += 14
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(invoiceLeft, y, "To:")
	y += 18
	pdf.SetFont("Helvetica", "", 11)
	toLines := []string{data.Customer.Name, "Tenant/Customer", data.Customer.Phone}
	if data.Customer.Email != "" {
		toLines = append(toLines, data.Customer.Email)
	}
	if data.Customer.Address != "" {
		toLines = append(toLines, data.Customer.Address)
	}
	for _, line := range toLines {
		pdf.Text(invoiceLeft, y, line)
		y += 16
	}

	// Property block
	y += 14
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(invoiceLeft, y, "Property Information:")
	y += 18
	pdf.SetFont("Helvetica", "", 11)
	propertyLine := "Property: " + data.Property.Name
	if data.Property.Unit != "" {
		propertyLine += " - Unit " + data.Property.Unit
	}
	pdf.Text(invoiceLeft, y, propertyLine)
	y += 16
	pdf.Text(invoiceLeft, y, "Address: "+data.Property.Address)
	y += 16
	if data.Financial.Month != "" {
		pdf.Text(invoiceLeft, y, "Billing Period: "+data.Financial.Month)
		y += 16
	}

	// Line-item table
	y += 14
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(invoiceLeft, y, "Description")
	rightAligned(invoiceRight, y, "Amount")
	y += 8
	pdf.Line(invoiceLeft, y, invoiceRight, y)
	y += 18
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range invoiceAmountRows(data) {
		pdf.Text(invoiceLeft, y, row.Label)
		rightAligned(invoiceRight, y, row.Value)
		y += 16
	}
	pdf.Line(invoiceLeft, y, invoiceRight, y)
	y += 18
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(invoiceLeft, y, "TOTAL AMOUNT")
	rightAligned(invoiceRight, y, formatAmount(data.Financial.TotalAmount)+" "+data.Financial.Currency)
	y += 30

	// Payment instructions, order preserved
	if len(data.PaymentInstructions) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(invoiceLeft, y, "Payment Instructions:")
		y += 16
		pdf.SetFont("Helvetica", "", 10)
		for _, instruction := range data.PaymentInstructions {
			pdf.Text(invoiceLeft, y, "- "+instruction)
			y += 14
		}
		y += 10
	}

	// Terms
	if data.Terms != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(invoiceLeft, y, "Terms & Conditions:")
		y += 10
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(invoiceLeft, y)
		pdf.MultiCell(invoiceRight-invoiceLeft, 13, data.Terms, "", "L", false)
		y = pdf.GetY() + 14
	}

	// Footer
	y += 10
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(invoiceLeft, y, "Generated on: "+now.Format("1/2/2006"))
	centered(y, 8, "", reportTitle)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
