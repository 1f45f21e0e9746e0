package export

import (
	"bytes"
	"html/template"
	"strings"
	"time"
)

// invoicePrintTmpl is the print-formatted twin of InvoicePDF: same fields,
// same conditional rows, styled for the browser print dialog.
var invoicePrintTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": formatAmount,
	"title": titleCase,
	"upper": strings.ToUpper,
}).Parse(`<html>
<head>
<title>Invoice {{.Invoice.InvoiceNumber}}</title>
<style>
	body { font-family: Arial, sans-serif; margin: 20px; line-height: 1.6; }
	.header { background: linear-gradient(135deg, #059669, #3B82F6); color: white; padding: 30px; margin: -20px -20px 30px -20px; text-align: center; }
	.invoice-info { display: grid; grid-template-columns: 1fr 1fr; gap: 30px; margin: 30px 0; }
	.invoice-table { width: 100%; border-collapse: collapse; margin: 30px 0; }
	.invoice-table th, .invoice-table td { border: 1px solid #ddd; padding: 15px; }
	.invoice-table th { background: #f8f9fa; font-weight: bold; }
	.total-row { background: #f0f9ff; font-weight: bold; font-size: 18px; }
	.footer { margin-top: 40px; padding: 20px; background: #f8f9fa; border-radius: 8px; }
	.amount { color: #059669; }
	.status { color: #059669; font-weight: bold; }
	.logo { font-size: 24px; font-weight: bold; margin-bottom: 10px; }
</style>
</head>
<body>
<div class="header">
	<div class="logo">AKERAY PROPERTY MANAGEMENT SYSTEM</div>
	<h1>OFFICIAL INVOICE</h1>
	<p>Professional Property Management Services</p>
</div>

<div class="invoice-info">
	<div>
		<h3>From:</h3>
		<p><strong>{{.Invoice.Business.Name}}</strong></p>
		<p>{{.Invoice.Business.OwnerName}}</p>
		<p>TIN: {{.Invoice.Business.TinNumber}}</p>
		<p>Address: {{.Invoice.Business.Address}}</p>
		<p>Phone: {{.Invoice.Business.Phone}}</p>
		<p>Email: {{.Invoice.Business.Email}}</p>
	</div>
	<div>
		<h3>Invoice Details:</h3>
		<p><strong>Invoice #:</strong> {{.Invoice.InvoiceNumber}}</p>
		<p><strong>Date:</strong> {{.Invoice.InvoiceDate}}</p>
		<p><strong>Due Date:</strong> {{.Invoice.DueDate}}</p>
		<p><strong>Type:</strong> {{title .Invoice.Type}}</p>
		<p><strong>Status:</strong> <span class="status">{{upper .Invoice.Status}}</span></p>
	</div>
</div>

<div>
	<h3>To:</h3>
	<p><strong>{{.Invoice.Customer.Name}}</strong></p>
	<p>Tenant/Customer</p>
	<p>Phone: {{.Invoice.Customer.Phone}}</p>
	{{if .Invoice.Customer.Email}}<p>Email: {{.Invoice.Customer.Email}}</p>{{end}}
	{{if .Invoice.Customer.Address}}<p>Address: {{.Invoice.Customer.Address}}</p>{{end}}
</div>

<div style="margin: 30px 0;">
	<h3>Property Information:</h3>
	<p><strong>Property:</strong> {{.Invoice.Property.Name}}{{if .Invoice.Property.Unit}} - Unit {{.Invoice.Property.Unit}}{{end}}</p>
	<p><strong>Address:</strong> {{.Invoice.Property.Address}}</p>
	{{if .Invoice.Financial.Month}}<p><strong>Billing Period:</strong> {{.Invoice.Financial.Month}}</p>{{end}}
</div>

<table class="invoice-table">
	<thead>
		<tr>
			<th>Description</th>
			<th style="text-align: right;">Amount ({{.Invoice.Financial.Currency}})</th>
		</tr>
	</thead>
	<tbody>
		<tr>
			<td>{{.LineItem}}</td>
			<td style="text-align: right;">{{money .Invoice.Financial.BaseAmount}}</td>
		</tr>
		{{if gt .Invoice.Financial.VATAmount 0.0}}
		<tr>
			<td>VAT (15%)</td>
			<td style="text-align: right;">{{money .Invoice.Financial.VATAmount}}</td>
		</tr>
		{{end}}
		<tr class="total-row">
			<td><strong>TOTAL AMOUNT</strong></td>
			<td style="text-align: right;" class="amount"><strong>{{money .Invoice.Financial.TotalAmount}}</strong></td>
		</tr>
	</tbody>
</table>

{{if .Invoice.PaymentInstructions}}
<div class="footer">
	<h4>Payment Instructions:</h4>
	{{range .Invoice.PaymentInstructions}}<p>&bull; {{.}}</p>
	{{end}}
</div>
{{end}}

{{if .Invoice.Terms}}
<div style="margin-top: 20px;">
	<h4>Terms &amp; Conditions:</h4>
	<p>{{.Invoice.Terms}}</p>
</div>
{{end}}

<div style="margin-top: 30px; text-align: center; font-size: 12px; color: #666;">
	<p>Generated on: {{.GeneratedOn}}</p>
	<p>Akeray Property Management System | Professional Property Services</p>
</div>
</body>
</html>
`))

// InvoicePrintHTML renders the print-formatted invoice document. Any field
// shown by InvoicePDF appears here too.
func InvoicePrintHTML(data InvoiceData, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	err := invoicePrintTmpl.Execute(&buf, map[string]any{
		"Invoice":     data,
		"LineItem":    lineItemDescription(data.Type),
		"GeneratedOn": now.Format("1/2/2006"),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
