package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/akeray/akeray-api/internal/auth"
	"github.com/akeray/akeray-api/internal/models"
)

const testJWTSecret = "test-secret"

func newTestAuthHandler(db *gorm.DB) *AuthHandler {
	return NewAuthHandler(db, testJWTSecret, time.Hour)
}

func seedAdminAccount(t *testing.T, db *gorm.DB, password string) *models.Admin {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admin := &models.Admin{Name: "Admin", Email: "admin@akeray.et", Password: string(hash)}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
	return admin
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdminAccount(t, db, "secret123")
	h := newTestAuthHandler(db)

	body := strings.NewReader(`{"email":"admin@akeray.et","password":"secret123","role":"admin"}`)
	resp := httptest.NewRecorder()
	h.Login(resp, newRequest(http.MethodPost, "/auth/login", body, auth.Identity{}, ""))
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", resp.Code, resp.Body.String())
	}

	var out struct {
		Token string `json:"token"`
		User  struct {
			ID   uint   `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.User.ID != admin.ID || out.User.Role != "admin" {
		t.Errorf("user block = %+v", out.User)
	}
	claims, err := auth.ParseToken(out.Token, testJWTSecret)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.UserID != admin.ID || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	seedAdminAccount(t, db, "secret123")
	h := newTestAuthHandler(db)

	body := strings.NewReader(`{"email":"admin@akeray.et","password":"wrong","role":"admin"}`)
	resp := httptest.NewRecorder()
	h.Login(resp, newRequest(http.MethodPost, "/auth/login", body, auth.Identity{}, ""))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.Code)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	h := newTestAuthHandler(db)

	body := strings.NewReader(`{"email":"ghost@akeray.et","password":"x","role":"admin"}`)
	resp := httptest.NewRecorder()
	h.Login(resp, newRequest(http.MethodPost, "/auth/login", body, auth.Identity{}, ""))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.Code)
	}
}

func TestLoginInvalidRole(t *testing.T) {
	db := setupTestDB(t)
	h := newTestAuthHandler(db)

	body := strings.NewReader(`{"email":"a@b.c","password":"x","role":"superuser"}`)
	resp := httptest.NewRecorder()
	h.Login(resp, newRequest(http.MethodPost, "/auth/login", body, auth.Identity{}, ""))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestSignup(t *testing.T) {
	db := setupTestDB(t)
	h := newTestAuthHandler(db)

	body := strings.NewReader(`{"first_name":"Mulu","last_name":"Tesfaye","email":"Mulu@Example.com","password":"secret123"}`)
	resp := httptest.NewRecorder()
	h.Signup(resp, newRequest(http.MethodPost, "/auth/signup", body, auth.Identity{}, ""))
	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", resp.Code, resp.Body.String())
	}

	var owner models.Owner
	if err := db.Where("email = ?", "mulu@example.com").First(&owner).Error; err != nil {
		t.Fatalf("owner not stored under normalized email: %v", err)
	}
	if owner.Status != models.AccountPending || owner.Verified {
		t.Errorf("new owner must start pending and unverified: %+v", owner)
	}
	if owner.Password == "secret123" {
		t.Errorf("password stored in clear")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	seedOwner(t, db, "mulu@example.com")
	h := newTestAuthHandler(db)

	body := strings.NewReader(`{"first_name":"Mulu","last_name":"Tesfaye","email":"mulu@example.com","password":"secret123"}`)
	resp := httptest.NewRecorder()
	h.Signup(resp, newRequest(http.MethodPost, "/auth/signup", body, auth.Identity{}, ""))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}
