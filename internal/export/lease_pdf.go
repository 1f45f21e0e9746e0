package export

import (
	"bytes"
	"strconv"
	"time"

	"github.com/akeray/akeray-api/internal/models"
)

// LeaseReportPDF renders a single lease agreement report. The lease must be
// loaded with its Property, Unit and Tenant relations.
func LeaseReportPDF(lease *models.Lease, now time.Time) ([]byte, error) {
	pdf := newReportDoc("Lease Agreement Report - "+strconv.Itoa(int(lease.ID)), now)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(reportLeftMargin, 150, "Lease Details:")
	pdf.SetFont("Helvetica", "", 12)

	propertyName, propertyAddress := "", ""
	if lease.Property != nil {
		propertyName = lease.Property.Name
		propertyAddress = lease.Property.Address + ", " + lease.Property.City
	}
	unitNumber := ""
	if lease.Unit != nil {
		unitNumber = lease.Unit.UnitNumber
	}

	lines := []string{
		"Lease ID: " + strconv.Itoa(int(lease.ID)),
		"Property: " + propertyName,
		"Address: " + propertyAddress,
		"Unit: " + unitNumber,
		"Tenant: " + lease.Tenant.FullName(),
		"Period: " + lease.StartDate.Format("2006-01-02") + " to " + lease.EndDate.Format("2006-01-02"),
		"Monthly Rent: " + formatAmount(lease.MonthlyRent) + " ETB",
		"Deposit: " + formatAmount(lease.Deposit) + " ETB",
		"Status: " + string(lease.Status),
	}
	y := 170.0
	for _, line := range lines {
		pdf.Text(reportIndent, y, line)
		y += 20
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
