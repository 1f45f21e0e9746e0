package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akeray/akeray-api/internal/models"
)

func TestLeaseCreateMarksUnitOccupied(t *testing.T) {
	db := setupTestDB(t)
	owner := seedOwner(t, db, "mulu@example.com")
	property := seedProperty(t, db, owner)
	tenant := &models.Tenant{FirstName: "Abel", LastName: "Bekele", Email: "abel@example.com"}
	if err := db.Create(tenant).Error; err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	h := NewLeaseHandler(db)

	body := strings.NewReader(fmt.Sprintf(`{
		"property_id": %d,
		"unit_id": %d,
		"tenant_id": %d,
		"start_date": "2025-01-01T00:00:00Z",
		"end_date": "2025-12-31T00:00:00Z",
		"monthly_rent": 15000,
		"deposit": 30000
	}`, property.ID, property.Units[0].ID, tenant.ID))
	resp := httptest.NewRecorder()
	h.Create(resp, newRequest(http.MethodPost, "/leases", body, adminIdentity(), ""))
	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", resp.Code, resp.Body.String())
	}

	var unit models.Unit
	if err := db.First(&unit, property.Units[0].ID).Error; err != nil {
		t.Fatalf("reload unit: %v", err)
	}
	if !unit.Occupied || unit.Status != models.UnitOccupied {
		t.Errorf("unit not marked occupied: %+v", unit)
	}
	if unit.TenantID == nil || *unit.TenantID != tenant.ID {
		t.Errorf("unit tenant not set")
	}
}

func TestLeaseCreateUnknownUnit(t *testing.T) {
	db := setupTestDB(t)
	owner := seedOwner(t, db, "mulu@example.com")
	property := seedProperty(t, db, owner)
	h := NewLeaseHandler(db)

	body := strings.NewReader(fmt.Sprintf(`{
		"property_id": %d,
		"unit_id": 999,
		"tenant_id": 1,
		"start_date": "2025-01-01T00:00:00Z",
		"end_date": "2025-12-31T00:00:00Z",
		"monthly_rent": 15000
	}`, property.ID))
	resp := httptest.NewRecorder()
	h.Create(resp, newRequest(http.MethodPost, "/leases", body, adminIdentity(), ""))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestLeaseCreateRejectsInvertedDates(t *testing.T) {
	db := setupTestDB(t)
	h := NewLeaseHandler(db)

	body := strings.NewReader(`{
		"property_id": 1,
		"unit_id": 1,
		"tenant_id": 1,
		"start_date": "2025-12-31T00:00:00Z",
		"end_date": "2025-01-01T00:00:00Z",
		"monthly_rent": 15000
	}`)
	resp := httptest.NewRecorder()
	h.Create(resp, newRequest(http.MethodPost, "/leases", body, adminIdentity(), ""))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "end_date") {
		t.Errorf("missing date violation: %s", resp.Body.String())
	}
}

func TestLeaseList(t *testing.T) {
	db := setupTestDB(t)
	owner := seedOwner(t, db, "mulu@example.com")
	property := seedProperty(t, db, owner)
	tenant := &models.Tenant{FirstName: "Abel", LastName: "Bekele", Email: "abel@example.com"}
	if err := db.Create(tenant).Error; err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	lease := &models.Lease{
		PropertyID: property.ID, UnitID: property.Units[0].ID, TenantID: tenant.ID,
		StartDate: exportNow, EndDate: exportNow.AddDate(1, 0, 0),
		MonthlyRent: 15000, Status: models.LeaseActive,
	}
	if err := db.Create(lease).Error; err != nil {
		t.Fatalf("create lease: %v", err)
	}
	h := NewLeaseHandler(db)

	resp := httptest.NewRecorder()
	h.List(resp, newRequest(http.MethodGet, "/leases", nil, adminIdentity(), ""))
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var leases []models.Lease
	if err := json.Unmarshal(resp.Body.Bytes(), &leases); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(leases) != 1 || leases[0].Property == nil || leases[0].Tenant == nil {
		t.Fatalf("expected 1 lease with preloads, got %+v", leases)
	}
}
