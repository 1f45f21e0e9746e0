package export

// InvoiceData is the canonical, export-only invoice projection consumed by
// both invoice renderers. It is constructed fresh per render and never
// persisted.
type InvoiceData struct {
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date"`
	DueDate       string `json:"due_date"`
	Type          string `json:"type"`   // rental, sale, deposit, utilities, maintenance, other
	Status        string `json:"status"` // generated, sent, paid, overdue

	Business InvoiceBusiness `json:"business"`
	Customer InvoiceCustomer `json:"customer"`
	Property InvoiceProperty `json:"property"`

	Financial InvoiceFinancial `json:"financial"`

	Terms               string   `json:"terms,omitempty"`
	PaymentInstructions []string `json:"payment_instructions,omitempty"`
	Notes               string   `json:"notes,omitempty"`
}

type InvoiceBusiness struct {
	Name        string `json:"name"`
	OwnerName   string `json:"owner_name"`
	TinNumber   string `json:"tin_number"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BankAccount string `json:"bank_account,omitempty"`
	BankName    string `json:"bank_name,omitempty"`
}

type InvoiceCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

type InvoiceProperty struct {
	Name    string `json:"name"`
	Unit    string `json:"unit,omitempty"`
	Address string `json:"address"`
}

type InvoiceFinancial struct {
	BaseAmount  float64 `json:"base_amount"`
	VATAmount   float64 `json:"vat_amount"`
	TotalAmount float64 `json:"total_amount"`
	Currency    string  `json:"currency"`
	Month       string  `json:"month,omitempty"` // billing-period label for rentals
}

// InvoiceSummary is the looser shape upstream screens hold invoice data in:
// flat amounts plus an owner block.
type InvoiceSummary struct {
	InvoiceNumber string          `json:"invoice_number"`
	Type          string          `json:"type"`
	Customer      InvoiceCustomer `json:"customer"`
	Property      InvoiceProperty `json:"property"`
	Amount        float64         `json:"amount"`
	VATAmount     float64         `json:"vat_amount"`
	Total         float64         `json:"total"`
	Date          string          `json:"date"`
	DueDate       string          `json:"due_date"`
	Status        string          `json:"status"`
	Month         string          `json:"month,omitempty"`
	Owner         SummaryOwner    `json:"owner"`
}

type SummaryOwner struct {
	BusinessName string `json:"business_name"`
	Name         string `json:"name"`
	TinNumber    string `json:"tin_number"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	BankAccount  string `json:"bank_account,omitempty"`
	BankName     string `json:"bank_name,omitempty"`
}

const defaultTerms = "Payment due within 30 days. Late payment fee applies after grace period."

// InvoiceFromSummary maps the loose summary shape into canonical
// InvoiceData. The mapping is lossless; the total is carried over as given
// and never recomputed from amount+VAT, that consistency is the caller's
// responsibility. Default terms and payment instructions are filled in,
// falling back to a standard bank when the owner has none on file.
func InvoiceFromSummary(s InvoiceSummary) InvoiceData {
	bankName := s.Owner.BankName
	if bankName == "" {
		bankName = "Commercial Bank of Ethiopia"
	}
	bankAccount := s.Owner.BankAccount
	if bankAccount == "" {
		bankAccount = "1000123456789"
	}
	return InvoiceData{
		InvoiceNumber: s.InvoiceNumber,
		InvoiceDate:   s.Date,
		DueDate:       s.DueDate,
		Type:          s.Type,
		Status:        s.Status,
		Business: InvoiceBusiness{
			Name:        s.Owner.BusinessName,
			OwnerName:   s.Owner.Name,
			TinNumber:   s.Owner.TinNumber,
			Address:     s.Owner.Address,
			Phone:       s.Owner.Phone,
			Email:       s.Owner.Email,
			BankAccount: s.Owner.BankAccount,
			BankName:    s.Owner.BankName,
		},
		Customer: s.Customer,
		Property: s.Property,
		Financial: InvoiceFinancial{
			BaseAmount:  s.Amount,
			VATAmount:   s.VATAmount,
			TotalAmount: s.Total,
			Currency:    "ETB",
			Month:       s.Month,
		},
		Terms: defaultTerms,
		PaymentInstructions: []string{
			"Payment can be made via Bank Transfer or Mobile Money",
			"Bank Transfer: " + bankName + " - Account: " + bankAccount,
			"Mobile Money: CBE Birr, M-Birr to " + s.Owner.Phone,
			"Reference: " + s.InvoiceNumber + " when making payment",
			"Late payment fee of 500 ETB applies after due date",
		},
	}
}

// lineItemDescription labels the base charge row; both invoice renderers
// share it so their tables stay in sync.
func lineItemDescription(invoiceType string) string {
	if invoiceType == "rental" {
		return "Monthly Rent"
	}
	return "Property Purchase"
}
