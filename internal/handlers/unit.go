package handlers

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/akeray/akeray-api/internal/auth"
	"github.com/akeray/akeray-api/internal/httpx"
	"github.com/akeray/akeray-api/internal/models"
	"github.com/akeray/akeray-api/internal/validation"
)

type UnitHandler struct {
	DB *gorm.DB
}

func NewUnitHandler(db *gorm.DB) *UnitHandler { return &UnitHandler{DB: db} }

var unitStatuses = []string{
	string(models.UnitVacant),
	string(models.UnitOccupied),
	string(models.UnitMaintenance),
	string(models.UnitReserved),
}

// ListByProperty: GET /properties/{id}/units - owner scoped like the
// property read path: a foreign property reads as 404.
func (h *UnitHandler) ListByProperty(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	propertyID, ok := pathID(w, r)
	if !ok {
		return
	}
	q := h.DB.WithContext(r.Context()).Model(&models.Property{})
	if id.Role == models.RoleOwner {
		q = q.Where("id = ? AND owner_id = ?", propertyID, id.UserID)
	} else {
		q = q.Where("id = ?", propertyID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	if count == 0 {
		httpx.JSONError(w, http.StatusNotFound, "property_not_found", nil)
		return
	}
	var units []models.Unit
	if err := h.DB.WithContext(r.Context()).
		Where("property_id = ?", propertyID).
		Preload("Tenant").
		Order("id").
		Find(&units).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_units", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, units)
}

// Update: PATCH /units/{id} - partial edit of price, status, occupancy and
// tenant/lease fields. Unit prices diverge from the parent's price per unit
// from here on; the parent is never consulted again.
func (h *UnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	unitID, ok := pathID(w, r)
	if !ok {
		return
	}
	var unit models.Unit
	if err := h.DB.WithContext(r.Context()).Preload("Property").First(&unit, unitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "unit_not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	if id.Role == models.RoleOwner && (unit.Property == nil || unit.Property.GetOwnerID() != id.UserID) {
		httpx.JSONError(w, http.StatusForbidden, "not_property_owner", nil)
		return
	}

	var body struct {
		Price          *float64   `json:"price"`
		Status         *string    `json:"status"`
		Occupied       *bool      `json:"occupied"`
		Bedrooms       *int       `json:"bedrooms"`
		Bathrooms      *int       `json:"bathrooms"`
		SquareMeters   *float64   `json:"square_meters"`
		Description    *string    `json:"description"`
		TenantID       *uint      `json:"tenant_id"`
		LeaseStartDate *time.Time `json:"lease_start_date"`
		LeaseEndDate   *time.Time `json:"lease_end_date"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	v := make(validation.Violations)
	if body.Status != nil {
		validation.OneOf("status", *body.Status, unitStatuses, v)
	}
	if body.Price != nil {
		validation.PositiveFloat("price", *body.Price, v)
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	if body.Price != nil {
		unit.Price = *body.Price
	}
	if body.Status != nil {
		unit.Status = models.UnitStatus(*body.Status)
	}
	if body.Occupied != nil {
		unit.Occupied = *body.Occupied
	}
	if body.Bedrooms != nil {
		unit.Bedrooms = *body.Bedrooms
	}
	if body.Bathrooms != nil {
		unit.Bathrooms = *body.Bathrooms
	}
	if body.SquareMeters != nil {
		unit.SquareMeters = *body.SquareMeters
	}
	if body.Description != nil {
		unit.Description = *body.Description
	}
	if body.TenantID != nil {
		unit.TenantID = body.TenantID
	}
	if body.LeaseStartDate != nil {
		unit.LeaseStartDate = body.LeaseStartDate
	}
	if body.LeaseEndDate != nil {
		unit.LeaseEndDate = body.LeaseEndDate
	}

	if err := h.DB.WithContext(r.Context()).Save(&unit).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_unit", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": "Unit updated successfully",
		"unit":    unit,
	})
}
