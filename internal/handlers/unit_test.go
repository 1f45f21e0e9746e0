package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/akeray/akeray-api/internal/models"
)

func TestUnitListByPropertyScoped(t *testing.T) {
	db := setupTestDB(t)
	owner := seedOwner(t, db, "mulu@example.com")
	property := seedProperty(t, db, owner)
	other := seedOwner(t, db, "other@example.com")
	h := NewUnitHandler(db)

	id := strconv.Itoa(int(property.ID))

	resp := httptest.NewRecorder()
	h.ListByProperty(resp, newRequest(http.MethodGet, "/properties/"+id+"/units", nil, ownerIdentity(other), id))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("foreign owner = %d, want 404", resp.Code)
	}

	resp = httptest.NewRecorder()
	h.ListByProperty(resp, newRequest(http.MethodGet, "/properties/"+id+"/units", nil, ownerIdentity(owner), id))
	if resp.Code != http.StatusOK {
		t.Fatalf("owning owner = %d, want 200", resp.Code)
	}
	var units []models.Unit
	if err := json.Unmarshal(resp.Body.Bytes(), &units); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(units) != 4 {
		t.Fatalf("unit count = %d, want 4", len(units))
	}
}

func TestUnitUpdatePriceIndependentOfParent(t *testing.T) {
	db := setupTestDB(t)
	owner := seedOwner(t, db, "mulu@example.com")
	property := seedProperty(t, db, owner)
	h := NewUnitHandler(db)

	unit := property.Units[0]
	id := strconv.Itoa(int(unit.ID))
	body := strings.NewReader(`{"price": 18000, "status": "occupied", "occupied": true}`)
	resp := httptest.NewRecorder()
	h.Update(resp, newRequest(http.MethodPatch, "/units/"+id, body, ownerIdentity(owner), id))
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", resp.Code, resp.Body.String())
	}

	var stored models.Unit
	if err := db.First(&stored, unit.ID).Error; err != nil {
		t.Fatalf("reload unit: %v", err)
	}
	if stored.Price != 18000 || stored.Status != models.UnitOccupied || !stored.Occupied {
		t.Errorf("unit not updated: %+v", stored)
	}

	// Parent keeps its own price figure.
	var parent models.Property
	if err := db.First(&parent, property.ID).Error; err != nil {
		t.Fatalf("reload property: %v", err)
	}
	if parent.PricePerUnit != 15000 {
		t.Errorf("parent price changed: %v", parent.PricePerUnit)
	}
}

func TestUnitUpdateForeignOwnerForbidden(t *testing.T) {
	db := setupTestDB(t)
	owner := seedOwner(t, db, "mulu@example.com")
	property := seedProperty(t, db, owner)
	other := seedOwner(t, db, "other@example.com")
	h := NewUnitHandler(db)

	id := strconv.Itoa(int(property.Units[0].ID))
	body := strings.NewReader(`{"price": 1}`)
	resp := httptest.NewRecorder()
	h.Update(resp, newRequest(http.MethodPatch, "/units/"+id, body, ownerIdentity(other), id))
	if resp.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.Code)
	}
}

func TestUnitUpdateValidatesStatus(t *testing.T) {
	db := setupTestDB(t)
	owner := seedOwner(t, db, "mulu@example.com")
	property := seedProperty(t, db, owner)
	h := NewUnitHandler(db)

	id := strconv.Itoa(int(property.Units[0].ID))
	body := strings.NewReader(`{"status": "demolished"}`)
	resp := httptest.NewRecorder()
	h.Update(resp, newRequest(http.MethodPatch, "/units/"+id, body, ownerIdentity(owner), id))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}
