package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/akeray/akeray-api/internal/httpx"
	"github.com/akeray/akeray-api/internal/models"
)

// OwnerHandler exposes the admin review operations on owner accounts.
type OwnerHandler struct {
	DB *gorm.DB
}

func NewOwnerHandler(db *gorm.DB) *OwnerHandler { return &OwnerHandler{DB: db} }

// List: GET /owners
func (h *OwnerHandler) List(w http.ResponseWriter, r *http.Request) {
	var owners []models.Owner
	if err := h.DB.WithContext(r.Context()).Order("id").Find(&owners).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_owners", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, owners)
}

// Approve: POST /owners/{id}/approve
func (h *OwnerHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, func(o *models.Owner) { o.Status = models.AccountApproved })
}

// Reject: POST /owners/{id}/reject
func (h *OwnerHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, func(o *models.Owner) { o.Status = models.AccountRejected })
}

// Verify: POST /owners/{id}/verify
func (h *OwnerHandler) Verify(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, func(o *models.Owner) { o.Verified = true })
}

func (h *OwnerHandler) review(w http.ResponseWriter, r *http.Request, apply func(*models.Owner)) {
	ownerID, ok := pathID(w, r)
	if !ok {
		return
	}
	var owner models.Owner
	if err := h.DB.WithContext(r.Context()).First(&owner, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "owner_not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	apply(&owner)
	if err := h.DB.WithContext(r.Context()).Save(&owner).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_owner", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, owner)
}
