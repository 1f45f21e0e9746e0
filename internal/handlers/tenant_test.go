package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/akeray/akeray-api/internal/models"
)

func TestTenantCreateAndUpdate(t *testing.T) {
	db := setupTestDB(t)
	h := NewTenantHandler(db)

	body := strings.NewReader(`{"first_name":"Abel","last_name":"Bekele","email":"Abel@Example.com","password":"secret123"}`)
	resp := httptest.NewRecorder()
	h.Create(resp, newRequest(http.MethodPost, "/tenants", body, adminIdentity(), ""))
	if resp.Code != http.StatusCreated {
		t.Fatalf("create = %d body=%s", resp.Code, resp.Body.String())
	}

	var tenant models.Tenant
	if err := db.Where("email = ?", "abel@example.com").First(&tenant).Error; err != nil {
		t.Fatalf("tenant not stored: %v", err)
	}
	if tenant.Password == "secret123" {
		t.Errorf("password stored in clear")
	}

	id := strconv.Itoa(int(tenant.ID))
	body = strings.NewReader(`{"phone":"+251911223344"}`)
	resp = httptest.NewRecorder()
	h.Update(resp, newRequest(http.MethodPatch, "/tenants/"+id, body, adminIdentity(), id))
	if resp.Code != http.StatusOK {
		t.Fatalf("update = %d", resp.Code)
	}
	if err := db.First(&tenant, tenant.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if tenant.Phone != "+251911223344" || tenant.FirstName != "Abel" {
		t.Errorf("partial update wrong: %+v", tenant)
	}
}

func TestTenantCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	h := NewTenantHandler(db)

	body := strings.NewReader(`{"first_name":"Abel"}`)
	resp := httptest.NewRecorder()
	h.Create(resp, newRequest(http.MethodPost, "/tenants", body, adminIdentity(), ""))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestTenantDelete(t *testing.T) {
	db := setupTestDB(t)
	tenant := &models.Tenant{FirstName: "Abel", LastName: "Bekele", Email: "abel@example.com"}
	if err := db.Create(tenant).Error; err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	h := NewTenantHandler(db)

	id := strconv.Itoa(int(tenant.ID))
	resp := httptest.NewRecorder()
	h.Delete(resp, newRequest(http.MethodDelete, "/tenants/"+id, nil, adminIdentity(), id))
	if resp.Code != http.StatusOK {
		t.Fatalf("delete = %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	h.Get(resp, newRequest(http.MethodGet, "/tenants/"+id, nil, adminIdentity(), id))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", resp.Code)
	}
}
