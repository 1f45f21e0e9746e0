package models

import "time"

// PropertyStatus is the lifecycle state of a listing.
type PropertyStatus string

const (
	PropertyActive      PropertyStatus = "active"
	PropertyInactive    PropertyStatus = "inactive"
	PropertyMaintenance PropertyStatus = "maintenance"
)

// Property is a managed real-estate listing owning N rentable units.
// Deleting a property deletes its units; the cascade is performed as an
// explicit two-step delete inside a transaction (see services.PropertyService).
type Property struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name          string  `gorm:"size:255;not null" json:"name"`
	Description   string  `gorm:"type:text" json:"description"`
	Type          string  `gorm:"size:50;not null" json:"type"`
	Address       string  `gorm:"size:255;not null" json:"address"`
	City          string  `gorm:"size:100;not null" json:"city"`
	Area          string  `gorm:"size:100" json:"area"`
	GoogleMapLink string  `gorm:"size:500" json:"google_map_link,omitempty"`
	TotalUnits    int     `gorm:"not null" json:"total_units"`
	PricePerUnit  float64 `gorm:"type:decimal(12,2);not null" json:"price_per_unit"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	SquareMeters  float64 `gorm:"type:decimal(10,2)" json:"square_meters,omitempty"`

	Amenities []string `gorm:"serializer:json" json:"amenities,omitempty"`
	Images    []string `gorm:"serializer:json" json:"images,omitempty"`

	Featured         bool           `gorm:"default:false" json:"featured"`
	PayForFeatured   bool           `gorm:"default:false" json:"pay_for_featured"`
	FeaturedDuration string         `gorm:"size:20;default:'30'" json:"featured_duration"`
	Status           PropertyStatus `gorm:"size:20;default:'active'" json:"status"`

	// Role records whether an admin or an owner listed the property.
	// OwnerID is required when Role is RoleOwner.
	Role    Role   `gorm:"size:20;default:'owner'" json:"role"`
	OwnerID *uint  `gorm:"index" json:"owner_id,omitempty"`
	Owner   *Owner `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	Units []Unit `gorm:"foreignKey:PropertyID" json:"units,omitempty"`
}

// GetOwnerID implements the Ownable interface for ownership checks.
// Returns 0 for admin-listed properties with no owner.
func (p *Property) GetOwnerID() uint {
	if p.OwnerID == nil {
		return 0
	}
	return *p.OwnerID
}

// UnitStatus is the occupancy state of a single unit.
type UnitStatus string

const (
	UnitVacant      UnitStatus = "vacant"
	UnitOccupied    UnitStatus = "occupied"
	UnitMaintenance UnitStatus = "maintenance"
	UnitReserved    UnitStatus = "reserved"
)

// Unit is an individually leasable sub-entity of a property. Units are
// provisioned "1".."totalUnits" when the parent is created, each priced at
// the parent's price per unit at creation time; price is independently
// editable afterward and totalUnits edits never re-provision units.
type Unit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PropertyID uint      `gorm:"index;not null;uniqueIndex:idx_units_property_number" json:"property_id"`
	Property   *Property `gorm:"foreignKey:PropertyID" json:"-"`

	UnitNumber string     `gorm:"size:20;not null;uniqueIndex:idx_units_property_number" json:"unit_number"`
	Occupied   bool       `gorm:"default:false" json:"occupied"`
	Status     UnitStatus `gorm:"size:20;default:'vacant'" json:"status"`
	Price      float64    `gorm:"type:decimal(12,2);not null" json:"price"`

	Bedrooms     int     `json:"bedrooms,omitempty"`
	Bathrooms    int     `json:"bathrooms,omitempty"`
	SquareMeters float64 `gorm:"type:decimal(10,2)" json:"square_meters,omitempty"`
	Description  string  `gorm:"size:500" json:"description,omitempty"`

	TenantID       *uint      `gorm:"index" json:"tenant_id,omitempty"`
	Tenant         *Tenant    `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	LeaseStartDate *time.Time `json:"lease_start_date,omitempty"`
	LeaseEndDate   *time.Time `json:"lease_end_date,omitempty"`
}

func (Unit) TableName() string { return "units" }

func (Property) TableName() string { return "properties" }
