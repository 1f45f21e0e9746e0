package models

import (
	"time"

	"gorm.io/gorm"
)

// Role identifies the kind of actor behind an authenticated request.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
	RoleTenant Role = "tenant"
)

// AccountStatus tracks the admin review state of an owner account.
type AccountStatus string

const (
	AccountPending  AccountStatus = "pending"
	AccountApproved AccountStatus = "approved"
	AccountRejected AccountStatus = "rejected"
)

// Owner is an actor who lists properties. An owner must be approved and
// verified by an admin before it may own properties.
type Owner struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"size:50" json:"phone,omitempty"`
	Password  string `gorm:"size:255;not null" json:"-"`

	// Business block used on invoices
	BusinessName string `gorm:"size:255" json:"business_name,omitempty"`
	TinNumber    string `gorm:"size:50" json:"tin_number,omitempty"`
	Address      string `gorm:"size:255" json:"address,omitempty"`
	BankName     string `gorm:"size:100" json:"bank_name,omitempty"`
	BankAccount  string `gorm:"size:50" json:"bank_account,omitempty"`

	Status   AccountStatus `gorm:"size:20;default:'pending'" json:"status"`
	Verified bool          `gorm:"default:false" json:"verified"`

	Properties []Property `gorm:"foreignKey:OwnerID" json:"properties,omitempty"`
}

// FullName renders "first last", safe when either part is empty.
func (o *Owner) FullName() string {
	if o == nil {
		return ""
	}
	switch {
	case o.FirstName == "":
		return o.LastName
	case o.LastName == "":
		return o.FirstName
	}
	return o.FirstName + " " + o.LastName
}

// CanListProperties reports whether the owner passed admin review.
func (o *Owner) CanListProperties() bool {
	return o != nil && o.Status == AccountApproved && o.Verified
}

// Admin is a back-office actor with unrestricted access.
type Admin struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
}

// Tenant rents units and appears on leases and invoices.
type Tenant struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"size:50" json:"phone,omitempty"`
	Password  string `gorm:"size:255" json:"-"`
	Address   string `gorm:"size:255" json:"address,omitempty"`
}

// FullName renders "first last", safe when either part is empty.
func (t *Tenant) FullName() string {
	if t == nil {
		return ""
	}
	switch {
	case t.FirstName == "":
		return t.LastName
	case t.LastName == "":
		return t.FirstName
	}
	return t.FirstName + " " + t.LastName
}
