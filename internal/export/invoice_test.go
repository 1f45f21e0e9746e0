package export

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var invoiceNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func sampleSummary() InvoiceSummary {
	return InvoiceSummary{
		InvoiceNumber: "INV-2025-001",
		Type:          "rental",
		Customer: InvoiceCustomer{
			Name:  "Abel Bekele",
			Phone: "+251911223344",
			Email: "abel@example.com",
		},
		Property: InvoiceProperty{
			Name:    "Bole Apartments",
			Unit:    "3",
			Address: "Bole Road 12, Addis Ababa",
		},
		Amount:    15000,
		VATAmount: 2250,
		Total:     17250,
		Date:      "6/1/2025",
		DueDate:   "6/30/2025",
		Status:    "generated",
		Month:     "June 2025",
		Owner: SummaryOwner{
			BusinessName: "Tesfaye Properties PLC",
			Name:         "Mulu Tesfaye",
			TinNumber:    "0012345678",
			Address:      "Kazanchis, Addis Ababa",
			Phone:        "+251911000000",
			Email:        "mulu@example.com",
			BankName:     "Awash Bank",
			BankAccount:  "013200045678",
		},
	}
}

func TestInvoiceFromSummaryMapsAllFields(t *testing.T) {
	s := sampleSummary()
	d := InvoiceFromSummary(s)

	if d.InvoiceNumber != s.InvoiceNumber || d.InvoiceDate != s.Date || d.DueDate != s.DueDate {
		t.Errorf("identity fields lost: %+v", d)
	}
	if d.Type != s.Type || d.Status != s.Status {
		t.Errorf("type/status lost: %q %q", d.Type, d.Status)
	}
	if d.Business.Name != s.Owner.BusinessName || d.Business.OwnerName != s.Owner.Name ||
		d.Business.TinNumber != s.Owner.TinNumber || d.Business.BankName != "Awash Bank" {
		t.Errorf("business block lost: %+v", d.Business)
	}
	if d.Customer != s.Customer {
		t.Errorf("customer block lost: %+v", d.Customer)
	}
	if d.Property != s.Property {
		t.Errorf("property block lost: %+v", d.Property)
	}
	if d.Financial.BaseAmount != 15000 || d.Financial.VATAmount != 2250 {
		t.Errorf("amounts lost: %+v", d.Financial)
	}
	if d.Financial.Currency != "ETB" {
		t.Errorf("currency = %q, want ETB", d.Financial.Currency)
	}
	if d.Financial.Month != "June 2025" {
		t.Errorf("billing month lost: %q", d.Financial.Month)
	}
	if d.Terms == "" || len(d.PaymentInstructions) == 0 {
		t.Errorf("defaults missing: terms=%q instructions=%d", d.Terms, len(d.PaymentInstructions))
	}
}

func TestInvoiceFromSummaryTotalIsCarried(t *testing.T) {
	s := sampleSummary()
	// Deliberately inconsistent with amount+VAT; the caller's figure wins.
	s.Total = 99999
	d := InvoiceFromSummary(s)
	if d.Financial.TotalAmount != 99999 {
		t.Fatalf("total = %v, want the caller-supplied 99999", d.Financial.TotalAmount)
	}
}

func TestInvoiceFromSummaryBankFallback(t *testing.T) {
	s := sampleSummary()
	s.Owner.BankName = ""
	s.Owner.BankAccount = ""
	d := InvoiceFromSummary(s)

	joined := strings.Join(d.PaymentInstructions, "\n")
	if !strings.Contains(joined, "Commercial Bank of Ethiopia") {
		t.Errorf("missing default bank in instructions: %q", joined)
	}
	if !strings.Contains(joined, "1000123456789") {
		t.Errorf("missing default account in instructions: %q", joined)
	}
}

func TestLineItemDescription(t *testing.T) {
	if got := lineItemDescription("rental"); got != "Monthly Rent" {
		t.Errorf("rental = %q", got)
	}
	if got := lineItemDescription("sale"); got != "Property Purchase" {
		t.Errorf("sale = %q", got)
	}
}

func TestInvoicePDFOutput(t *testing.T) {
	data := InvoiceFromSummary(sampleSummary())
	out, err := InvoicePDF(data, invoiceNow)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}

func TestInvoicePDFZeroVAT(t *testing.T) {
	s := sampleSummary()
	s.VATAmount = 0
	s.Total = s.Amount
	if _, err := InvoicePDF(InvoiceFromSummary(s), invoiceNow); err != nil {
		t.Fatalf("render without VAT: %v", err)
	}
}

func TestInvoiceAmountRowsWithVAT(t *testing.T) {
	rows := invoiceAmountRows(InvoiceFromSummary(sampleSummary()))
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want base charge plus VAT", len(rows))
	}
	if rows[0].Label != "Monthly Rent" || rows[0].Value != "15,000 ETB" {
		t.Fatalf("base row = %+v", rows[0])
	}
	if rows[1].Label != "VAT (15%)" || rows[1].Value != "2,250 ETB" {
		t.Fatalf("VAT row = %+v", rows[1])
	}
}

func TestInvoiceAmountRowsOmitZeroVAT(t *testing.T) {
	s := sampleSummary()
	s.VATAmount = 0
	s.Total = s.Amount
	rows := invoiceAmountRows(InvoiceFromSummary(s))
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want the base charge only", len(rows))
	}
	for _, row := range rows {
		if row.Label == "VAT (15%)" {
			t.Fatal("VAT row rendered despite a zero VAT amount")
		}
	}
}

func TestInvoicePrintHTMLFields(t *testing.T) {
	data := InvoiceFromSummary(sampleSummary())
	out, err := InvoicePrintHTML(data, invoiceNow)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"INV-2025-001",
		"Abel Bekele",
		"Tesfaye Properties PLC",
		"TIN: 0012345678",
		"Bole Apartments - Unit 3",
		"Billing Period:</strong> June 2025",
		"Monthly Rent",
		"VAT (15%)",
		"2,250",
		"17,250",
		"TOTAL AMOUNT",
		"Generated on: 6/15/2025",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("print HTML missing %q", want)
		}
	}
}

func TestInvoicePrintHTMLOmitsZeroVAT(t *testing.T) {
	s := sampleSummary()
	s.VATAmount = 0
	s.Total = s.Amount
	out, err := InvoicePrintHTML(InvoiceFromSummary(s), invoiceNow)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "VAT (15%)") {
		t.Fatalf("VAT row rendered for a zero VAT amount")
	}
}
