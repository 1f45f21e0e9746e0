package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/akeray/akeray-api/internal/auth"
	"github.com/akeray/akeray-api/internal/models"
	"github.com/akeray/akeray-api/internal/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// unique in-memory DB per test name to avoid leakage via shared cache
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.Owner{}, &models.Tenant{},
		&models.Property{}, &models.Unit{}, &models.Lease{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedOwner(t *testing.T, db *gorm.DB, email string) *models.Owner {
	owner := &models.Owner{
		FirstName: "Mulu",
		LastName:  "Tesfaye",
		Email:     email,
		Password:  "hash",
		Status:    models.AccountApproved,
		Verified:  true,
	}
	if err := db.Create(owner).Error; err != nil {
		t.Fatalf("create owner: %v", err)
	}
	return owner
}

func seedProperty(t *testing.T, db *gorm.DB, owner *models.Owner) *models.Property {
	svc := services.NewPropertyService(db)
	property, err := svc.Create(context.Background(), owner.ID, models.RoleOwner, services.CreatePropertyInput{
		Name:         "Bole Apartments",
		Type:         "apartment",
		Address:      "Bole Road 12",
		City:         "Addis Ababa",
		TotalUnits:   4,
		PricePerUnit: 15000,
	})
	if err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return property
}

// newRequest builds a request carrying the given identity and optional
// {id} path value, mirroring what the router and auth middleware attach.
func newRequest(method, target string, body io.Reader, id auth.Identity, pathID string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if id.UserID != 0 {
		req = req.WithContext(auth.WithIdentity(req.Context(), id))
	}
	if pathID != "" {
		req.SetPathValue("id", pathID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func adminIdentity() auth.Identity { return auth.Identity{UserID: 1, Role: models.RoleAdmin} }

func ownerIdentity(o *models.Owner) auth.Identity {
	return auth.Identity{UserID: o.ID, Role: models.RoleOwner}
}
