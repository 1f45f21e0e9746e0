package handlers

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/akeray/akeray-api/internal/httpx"
	"github.com/akeray/akeray-api/internal/models"
	"github.com/akeray/akeray-api/internal/validation"
)

type TenantHandler struct {
	DB *gorm.DB
}

func NewTenantHandler(db *gorm.DB) *TenantHandler { return &TenantHandler{DB: db} }

// List: GET /tenants
func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	var tenants []models.Tenant
	if err := h.DB.WithContext(r.Context()).Order("id").Find(&tenants).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_tenants", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, tenants)
}

// Create: POST /tenants
func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Password  string `json:"password"`
		Address   string `json:"address"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	email := strings.TrimSpace(strings.ToLower(body.Email))
	v := make(validation.Violations)
	validation.Required("first_name", body.FirstName, v)
	validation.Required("last_name", body.LastName, v)
	validation.Required("email", email, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	tenant := models.Tenant{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     email,
		Phone:     body.Phone,
		Address:   body.Address,
	}
	if body.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			return
		}
		tenant.Password = string(hash)
	}
	if err := h.DB.WithContext(r.Context()).Create(&tenant).Error; err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "failed_to_create_tenant", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"message": "Tenant created successfully",
		"tenant":  tenant,
	})
}

// Get: GET /tenants/{id}
func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.load(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, tenant)
}

// Update: PATCH /tenants/{id}
func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.load(w, r)
	if !ok {
		return
	}
	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Phone     *string `json:"phone"`
		Address   *string `json:"address"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if body.FirstName != nil {
		tenant.FirstName = *body.FirstName
	}
	if body.LastName != nil {
		tenant.LastName = *body.LastName
	}
	if body.Phone != nil {
		tenant.Phone = *body.Phone
	}
	if body.Address != nil {
		tenant.Address = *body.Address
	}
	if err := h.DB.WithContext(r.Context()).Save(tenant).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_tenant", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": "Tenant updated successfully",
		"tenant":  tenant,
	})
}

// Delete: DELETE /tenants/{id}
func (h *TenantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.load(w, r)
	if !ok {
		return
	}
	if err := h.DB.WithContext(r.Context()).Delete(tenant).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_tenant", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Tenant deleted successfully"})
}

func (h *TenantHandler) load(w http.ResponseWriter, r *http.Request) (*models.Tenant, bool) {
	tenantID, ok := pathID(w, r)
	if !ok {
		return nil, false
	}
	var tenant models.Tenant
	if err := h.DB.WithContext(r.Context()).First(&tenant, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "tenant_not_found", nil)
			return nil, false
		}
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return nil, false
	}
	return &tenant, true
}
