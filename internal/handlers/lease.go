package handlers

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/akeray/akeray-api/internal/httpx"
	"github.com/akeray/akeray-api/internal/models"
	"github.com/akeray/akeray-api/internal/validation"
)

type LeaseHandler struct {
	DB *gorm.DB
}

func NewLeaseHandler(db *gorm.DB) *LeaseHandler { return &LeaseHandler{DB: db} }

// Create: POST /leases - binds a tenant to a unit; the unit is flagged
// occupied and stamped with the lease date range in the same transaction.
func (h *LeaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PropertyID  uint      `json:"property_id"`
		UnitID      uint      `json:"unit_id"`
		TenantID    uint      `json:"tenant_id"`
		StartDate   time.Time `json:"start_date"`
		EndDate     time.Time `json:"end_date"`
		MonthlyRent float64   `json:"monthly_rent"`
		Deposit     float64   `json:"deposit"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	v := make(validation.Violations)
	if body.PropertyID == 0 {
		v["property_id"] = "required"
	}
	if body.UnitID == 0 {
		v["unit_id"] = "required"
	}
	if body.TenantID == 0 {
		v["tenant_id"] = "required"
	}
	validation.PositiveFloat("monthly_rent", body.MonthlyRent, v)
	validation.NonNegativeFloat("deposit", body.Deposit, v)
	if !body.EndDate.After(body.StartDate) {
		v["end_date"] = "must_follow_start_date"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	var unit models.Unit
	if err := h.DB.WithContext(r.Context()).
		Where("id = ? AND property_id = ?", body.UnitID, body.PropertyID).
		First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "unit_not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	var tenant models.Tenant
	if err := h.DB.WithContext(r.Context()).First(&tenant, body.TenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "tenant_not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}

	lease := models.Lease{
		PropertyID:  body.PropertyID,
		UnitID:      body.UnitID,
		TenantID:    body.TenantID,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
		MonthlyRent: body.MonthlyRent,
		Deposit:     body.Deposit,
		Status:      models.LeaseActive,
	}
	err := h.DB.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&lease).Error; err != nil {
			return err
		}
		unit.Occupied = true
		unit.Status = models.UnitOccupied
		unit.TenantID = &tenant.ID
		unit.LeaseStartDate = &lease.StartDate
		unit.LeaseEndDate = &lease.EndDate
		return tx.Save(&unit).Error
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_lease", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"message": "Lease created successfully",
		"lease":   lease,
	})
}

// List: GET /leases
func (h *LeaseHandler) List(w http.ResponseWriter, r *http.Request) {
	var leases []models.Lease
	if err := h.DB.WithContext(r.Context()).
		Preload("Property").
		Preload("Unit").
		Preload("Tenant").
		Order("id").
		Find(&leases).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_leases", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, leases)
}

// Get: GET /leases/{id}
func (h *LeaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	leaseID, ok := pathID(w, r)
	if !ok {
		return
	}
	var lease models.Lease
	if err := h.DB.WithContext(r.Context()).
		Preload("Property").
		Preload("Unit").
		Preload("Tenant").
		First(&lease, leaseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "lease_not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, lease)
}
