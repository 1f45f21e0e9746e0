package models

import "time"

// LeaseStatus is the lifecycle state of a lease agreement.
type LeaseStatus string

const (
	LeaseActive     LeaseStatus = "active"
	LeaseExpired    LeaseStatus = "expired"
	LeaseTerminated LeaseStatus = "terminated"
)

// Lease binds a tenant to a unit of a property for a date range.
type Lease struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PropertyID uint      `gorm:"index;not null" json:"property_id"`
	Property   *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	UnitID     uint      `gorm:"index;not null" json:"unit_id"`
	Unit       *Unit     `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	TenantID   uint      `gorm:"index;not null" json:"tenant_id"`
	Tenant     *Tenant   `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`

	StartDate   time.Time   `gorm:"not null" json:"start_date"`
	EndDate     time.Time   `gorm:"not null" json:"end_date"`
	MonthlyRent float64     `gorm:"type:decimal(12,2);not null" json:"monthly_rent"`
	Deposit     float64     `gorm:"type:decimal(12,2)" json:"deposit"`
	Status      LeaseStatus `gorm:"size:20;default:'active'" json:"status"`
}
