package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/akeray/akeray-api/internal/auth"
	"github.com/akeray/akeray-api/internal/httpx"
	"github.com/akeray/akeray-api/internal/models"
	"github.com/akeray/akeray-api/internal/validation"
)

type AuthHandler struct {
	DB          *gorm.DB
	Secret      string
	TokenExpiry time.Duration
}

func NewAuthHandler(db *gorm.DB, secret string, expiry time.Duration) *AuthHandler {
	return &AuthHandler{DB: db, Secret: secret, TokenExpiry: expiry}
}

// Login: POST /auth/login - authenticates an admin, owner or tenant and
// returns a bearer token plus the user block the dashboard keeps in its
// session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	email := strings.TrimSpace(strings.ToLower(body.Email))
	v := make(validation.Violations)
	validation.Required("email", email, v)
	validation.Required("password", body.Password, v)
	validation.Required("role", body.Role, v)
	validation.OneOf("role", body.Role, []string{
		string(models.RoleAdmin), string(models.RoleOwner), string(models.RoleTenant),
	}, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	var (
		userID uint
		hash   string
		name   string
	)
	switch models.Role(body.Role) {
	case models.RoleAdmin:
		var admin models.Admin
		if err := h.DB.Where("email = ?", email).First(&admin).Error; err != nil {
			h.rejectLogin(w, err)
			return
		}
		userID, hash, name = admin.ID, admin.Password, admin.Name
	case models.RoleOwner:
		var owner models.Owner
		if err := h.DB.Where("email = ?", email).First(&owner).Error; err != nil {
			h.rejectLogin(w, err)
			return
		}
		userID, hash, name = owner.ID, owner.Password, owner.FullName()
	case models.RoleTenant:
		var tenant models.Tenant
		if err := h.DB.Where("email = ?", email).First(&tenant).Error; err != nil {
			h.rejectLogin(w, err)
			return
		}
		userID, hash, name = tenant.ID, tenant.Password, tenant.FullName()
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(body.Password)) != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	token, err := auth.GenerateToken(userID, models.Role(body.Role), h.Secret, h.TokenExpiry)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "token_generation_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user": map[string]any{
			"id":    userID,
			"email": email,
			"role":  body.Role,
			"name":  name,
		},
	})
}

func (h *AuthHandler) rejectLogin(w http.ResponseWriter, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
}

// Signup: POST /auth/signup - owner self-registration. New owners start
// pending and unverified; an admin must approve and verify them before they
// can list properties.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		Email        string `json:"email"`
		Phone        string `json:"phone"`
		Password     string `json:"password"`
		BusinessName string `json:"business_name"`
		TinNumber    string `json:"tin_number"`
		Address      string `json:"address"`
		BankName     string `json:"bank_name"`
		BankAccount  string `json:"bank_account"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	email := strings.TrimSpace(strings.ToLower(body.Email))
	v := make(validation.Violations)
	validation.Required("first_name", body.FirstName, v)
	validation.Required("last_name", body.LastName, v)
	validation.Required("email", email, v)
	validation.Required("password", body.Password, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	var count int64
	if err := h.DB.Model(&models.Owner{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	if count > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "email_already_registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	owner := models.Owner{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Email:        email,
		Phone:        body.Phone,
		Password:     string(hash),
		BusinessName: body.BusinessName,
		TinNumber:    body.TinNumber,
		Address:      body.Address,
		BankName:     body.BankName,
		BankAccount:  body.BankAccount,
		Status:       models.AccountPending,
	}
	if err := h.DB.Create(&owner).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_owner", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"message": "Registration received, awaiting admin approval",
		"owner":   owner,
	})
}
