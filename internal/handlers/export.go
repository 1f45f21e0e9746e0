package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/akeray/akeray-api/internal/export"
	"github.com/akeray/akeray-api/internal/httpx"
	"github.com/akeray/akeray-api/internal/models"
	"github.com/akeray/akeray-api/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves rendered documents. Every renderer builds the whole
// buffer before the first response byte is written, so a failure never
// leaks a partial document.
type ExportHandler struct {
	DB  *gorm.DB
	Svc *services.PropertyService
	// Now is swappable for deterministic document timestamps in tests.
	Now func() time.Time
}

func NewExportHandler(db *gorm.DB, svc *services.PropertyService) *ExportHandler {
	return &ExportHandler{DB: db, Svc: svc, Now: time.Now}
}

// PropertiesPDF: GET /export/properties/pdf
func (h *ExportHandler) PropertiesPDF(w http.ResponseWriter, r *http.Request) {
	properties, err := h.Svc.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_generate_pdf_report", nil)
		return
	}
	now := h.Now()
	data, err := export.PropertyReportPDF(properties, now)
	if err != nil {
		log.Printf("property report pdf: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_generate_pdf_report", nil)
		return
	}
	httpx.Document(w, "application/pdf", reportFilename("pdf", now), data)
}

// PropertiesExcel: GET /export/properties/excel
func (h *ExportHandler) PropertiesExcel(w http.ResponseWriter, r *http.Request) {
	properties, err := h.Svc.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_generate_excel_report", nil)
		return
	}
	now := h.Now()
	data, err := export.PropertyReportExcel(properties)
	if err != nil {
		log.Printf("property report excel: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_generate_excel_report", nil)
		return
	}
	httpx.Document(w, xlsxContentType, reportFilename("xlsx", now), data)
}

// LeasePDF: GET /export/leases/{id}/pdf - renders the lease identified by
// id; unknown ids are a 404, not placeholder content.
func (h *ExportHandler) LeasePDF(w http.ResponseWriter, r *http.Request) {
	leaseID, ok := pathID(w, r)
	if !ok {
		return
	}
	var lease models.Lease
	err := h.DB.WithContext(r.Context()).
		Preload("Property").
		Preload("Unit").
		Preload("Tenant").
		First(&lease, leaseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "lease_not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_generate_lease_pdf", nil)
		return
	}
	now := h.Now()
	data, err := export.LeaseReportPDF(&lease, now)
	if err != nil {
		log.Printf("lease report pdf: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_generate_lease_pdf", nil)
		return
	}
	filename := "lease-" + strconv.Itoa(int(lease.ID)) + "-" + epochMillis(now) + ".pdf"
	httpx.Document(w, "application/pdf", filename, data)
}

// InvoicePDF: POST /export/invoices/pdf - normalizes the summary payload
// and renders the downloadable invoice.
func (h *ExportHandler) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.decodeSummary(w, r)
	if !ok {
		return
	}
	now := h.Now()
	data, err := export.InvoicePDF(export.InvoiceFromSummary(summary), now)
	if err != nil {
		log.Printf("invoice pdf: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_generate_invoice_pdf", nil)
		return
	}
	httpx.Document(w, "application/pdf", "invoice-"+summary.InvoiceNumber+".pdf", data)
}

// InvoicePrint: POST /export/invoices/print - same payload, rendered as the
// print-formatted HTML document.
func (h *ExportHandler) InvoicePrint(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.decodeSummary(w, r)
	if !ok {
		return
	}
	data, err := export.InvoicePrintHTML(export.InvoiceFromSummary(summary), h.Now())
	if err != nil {
		log.Printf("invoice print: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_generate_invoice", nil)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		_ = err
	}
}

func (h *ExportHandler) decodeSummary(w http.ResponseWriter, r *http.Request) (export.InvoiceSummary, bool) {
	var summary export.InvoiceSummary
	if !decodeJSON(w, r, &summary) {
		return summary, false
	}
	if summary.InvoiceNumber == "" {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"invoice_number": "required"})
		return summary, false
	}
	return summary, true
}

func reportFilename(ext string, now time.Time) string {
	return "properties-report-" + epochMillis(now) + "." + ext
}

func epochMillis(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
