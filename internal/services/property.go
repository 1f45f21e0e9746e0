package services

import (
	"context"
	"errors"
	"math"
	"strconv"

	"gorm.io/gorm"

	"github.com/akeray/akeray-api/internal/models"
	"github.com/akeray/akeray-api/internal/validation"
)

// PropertyService implements the property/unit provisioning workflow:
// transactional creation of a property with its dependent unit records,
// ownership-gated mutations, and the read/stats queries.
type PropertyService struct {
	DB *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService { return &PropertyService{DB: db} }

var propertyStatuses = []string{
	string(models.PropertyActive),
	string(models.PropertyInactive),
	string(models.PropertyMaintenance),
}

// CreatePropertyInput carries the fields of a create request after transport
// decoding. Zero TotalUnits or PricePerUnit is rejected by validation.
type CreatePropertyInput struct {
	Name             string
	Description      string
	Type             string
	Address          string
	City             string
	Area             string
	GoogleMapLink    string
	TotalUnits       int
	PricePerUnit     float64
	Bedrooms         int
	Bathrooms        int
	SquareMeters     float64
	Amenities        []string
	Images           []string
	Featured         bool
	PayForFeatured   bool
	FeaturedDuration string
	Status           string
}

func (in *CreatePropertyInput) validate() validation.Violations {
	v := make(validation.Violations)
	validation.Required("name", in.Name, v)
	validation.Required("type", in.Type, v)
	validation.Required("address", in.Address, v)
	validation.Required("city", in.City, v)
	validation.PositiveInt("total_units", in.TotalUnits, v)
	validation.PositiveFloat("price_per_unit", in.PricePerUnit, v)
	validation.NonNegativeInt("bedrooms", in.Bedrooms, v)
	validation.NonNegativeInt("bathrooms", in.Bathrooms, v)
	validation.NonNegativeFloat("square_meters", in.SquareMeters, v)
	validation.OneOf("status", in.Status, propertyStatuses, v)
	return v
}

// Create persists a property and provisions its units in one transaction.
// Units are numbered "1".."totalUnits" and priced at the property's price
// per unit at creation time. Owners must be approved and verified.
func (s *PropertyService) Create(ctx context.Context, actorID uint, actorRole models.Role, in CreatePropertyInput) (*models.Property, error) {
	db := s.DB.WithContext(ctx)

	var ownerID *uint
	switch actorRole {
	case models.RoleOwner:
		var owner models.Owner
		if err := db.First(&owner, actorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NotFoundError("owner_not_found")
			}
			return nil, err
		}
		if !owner.CanListProperties() {
			return nil, PermissionDeniedError("owner_not_approved")
		}
		ownerID = &owner.ID
	case models.RoleAdmin:
		var admin models.Admin
		if err := db.First(&admin, actorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NotFoundError("admin_not_found")
			}
			return nil, err
		}
	default:
		return nil, PermissionDeniedError("role_not_allowed")
	}

	if v := in.validate(); !v.Empty() {
		return nil, InvalidInputError("validation_failed", v)
	}

	status := models.PropertyStatus(in.Status)
	if status == "" {
		status = models.PropertyActive
	}
	featuredDuration := in.FeaturedDuration
	if featuredDuration == "" {
		featuredDuration = "30"
	}

	property := models.Property{
		Name:             in.Name,
		Description:      in.Description,
		Type:             in.Type,
		Address:          in.Address,
		City:             in.City,
		Area:             in.Area,
		GoogleMapLink:    in.GoogleMapLink,
		TotalUnits:       in.TotalUnits,
		PricePerUnit:     in.PricePerUnit,
		Bedrooms:         in.Bedrooms,
		Bathrooms:        in.Bathrooms,
		SquareMeters:     in.SquareMeters,
		Amenities:        in.Amenities,
		Images:           in.Images,
		Featured:         in.Featured,
		PayForFeatured:   in.PayForFeatured,
		FeaturedDuration: featuredDuration,
		Status:           status,
		Role:             actorRole,
		OwnerID:          ownerID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return err
		}
		units := make([]models.Unit, 0, in.TotalUnits)
		for i := 1; i <= in.TotalUnits; i++ {
			units = append(units, models.Unit{
				PropertyID:   property.ID,
				UnitNumber:   strconv.Itoa(i),
				Price:        in.PricePerUnit,
				Bedrooms:     in.Bedrooms,
				Bathrooms:    in.Bathrooms,
				SquareMeters: in.SquareMeters,
				Status:       models.UnitVacant,
			})
		}
		return tx.Create(&units).Error
	})
	if err != nil {
		return nil, err
	}

	var created models.Property
	if err := db.Preload("Owner").Preload("Units", func(q *gorm.DB) *gorm.DB {
		return q.Order("units.id")
	}).First(&created, property.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePropertyInput is a partial update; nil fields are left unchanged.
// TotalUnits edits never re-provision units.
type UpdatePropertyInput struct {
	Name             *string
	Description      *string
	Type             *string
	Address          *string
	City             *string
	Area             *string
	GoogleMapLink    *string
	TotalUnits       *int
	PricePerUnit     *float64
	Bedrooms         *int
	Bathrooms        *int
	SquareMeters     *float64
	Amenities        []string
	Images           []string
	Featured         *bool
	PayForFeatured   *bool
	FeaturedDuration *string
	Status           *string
}

// Update merges the set fields onto the stored property. Owners may only
// update their own properties; the mismatch is reported as PermissionDenied.
func (s *PropertyService) Update(ctx context.Context, propertyID, actorID uint, actorRole models.Role, in UpdatePropertyInput) (*models.Property, error) {
	db := s.DB.WithContext(ctx)

	var property models.Property
	if err := db.Preload("Owner").First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("property_not_found")
		}
		return nil, err
	}
	if actorRole == models.RoleOwner && property.GetOwnerID() != actorID {
		return nil, PermissionDeniedError("not_property_owner")
	}

	v := make(validation.Violations)
	if in.Status != nil {
		validation.OneOf("status", *in.Status, propertyStatuses, v)
	}
	if in.TotalUnits != nil {
		validation.PositiveInt("total_units", *in.TotalUnits, v)
	}
	if in.PricePerUnit != nil {
		validation.PositiveFloat("price_per_unit", *in.PricePerUnit, v)
	}
	if !v.Empty() {
		return nil, InvalidInputError("validation_failed", v)
	}

	if in.Name != nil {
		property.Name = *in.Name
	}
	if in.Description != nil {
		property.Description = *in.Description
	}
	if in.Type != nil {
		property.Type = *in.Type
	}
	if in.Address != nil {
		property.Address = *in.Address
	}
	if in.City != nil {
		property.City = *in.City
	}
	if in.Area != nil {
		property.Area = *in.Area
	}
	if in.GoogleMapLink != nil {
		property.GoogleMapLink = *in.GoogleMapLink
	}
	if in.TotalUnits != nil {
		property.TotalUnits = *in.TotalUnits
	}
	if in.PricePerUnit != nil {
		property.PricePerUnit = *in.PricePerUnit
	}
	if in.Bedrooms != nil {
		property.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		property.Bathrooms = *in.Bathrooms
	}
	if in.SquareMeters != nil {
		property.SquareMeters = *in.SquareMeters
	}
	if in.Amenities != nil {
		property.Amenities = in.Amenities
	}
	if in.Images != nil {
		property.Images = in.Images
	}
	if in.Featured != nil {
		property.Featured = *in.Featured
	}
	if in.PayForFeatured != nil {
		property.PayForFeatured = *in.PayForFeatured
	}
	if in.FeaturedDuration != nil {
		property.FeaturedDuration = *in.FeaturedDuration
	}
	if in.Status != nil {
		property.Status = models.PropertyStatus(*in.Status)
	}

	if err := db.Save(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// Delete removes a property and its units. The cascade is an explicit
// two-step delete inside one transaction so it stays visible and testable.
func (s *PropertyService) Delete(ctx context.Context, propertyID, actorID uint, actorRole models.Role) error {
	db := s.DB.WithContext(ctx)

	var property models.Property
	if err := db.Preload("Owner").First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError("property_not_found")
		}
		return err
	}
	if actorRole == models.RoleOwner && property.GetOwnerID() != actorID {
		return PermissionDeniedError("not_property_owner")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", property.ID).Delete(&models.Unit{}).Error; err != nil {
			return err
		}
		return tx.Delete(&property).Error
	})
}

// List returns every property with owner and units loaded.
func (s *PropertyService) List(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	err := s.DB.WithContext(ctx).
		Preload("Owner").
		Preload("Units").
		Order("id").
		Find(&properties).Error
	return properties, err
}

// GetByID loads a single property. For owners the ownership filter is folded
// into the query, so a foreign property reads as NotFound rather than
// PermissionDenied; mutations use the opposite policy on purpose (the HTTP
// contract returns 404 for scoped reads and 403 for blocked writes).
func (s *PropertyService) GetByID(ctx context.Context, propertyID, actorID uint, actorRole models.Role) (*models.Property, error) {
	q := s.DB.WithContext(ctx).Preload("Owner").Preload("Units")
	if actorRole == models.RoleOwner {
		q = q.Where("id = ? AND owner_id = ?", propertyID, actorID)
	} else {
		q = q.Where("id = ?", propertyID)
	}
	var property models.Property
	if err := q.First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("property_not_found")
		}
		return nil, err
	}
	return &property, nil
}

// ListByOwner returns the properties listed by one owner.
func (s *PropertyService) ListByOwner(ctx context.Context, ownerID uint) ([]models.Property, error) {
	var properties []models.Property
	err := s.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("Owner").
		Preload("Units").
		Order("id").
		Find(&properties).Error
	return properties, err
}

// PropertyStats is the aggregate overview shown on dashboards.
type PropertyStats struct {
	TotalProperties  int64 `json:"totalProperties"`
	ActiveProperties int64 `json:"activeProperties"`
	TotalUnits       int64 `json:"totalUnits"`
	OccupiedUnits    int64 `json:"occupiedUnits"`
	OccupancyRate    int   `json:"occupancyRate"`
}

// Stats computes the aggregate counts. OccupancyRate is a rounded
// percentage, defined as 0 when there are no units.
func (s *PropertyService) Stats(ctx context.Context) (*PropertyStats, error) {
	db := s.DB.WithContext(ctx)
	stats := &PropertyStats{}
	if err := db.Model(&models.Property{}).Count(&stats.TotalProperties).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Property{}).Where("status = ?", models.PropertyActive).Count(&stats.ActiveProperties).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Unit{}).Count(&stats.TotalUnits).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Unit{}).Where("occupied = ?", true).Count(&stats.OccupiedUnits).Error; err != nil {
		return nil, err
	}
	if stats.TotalUnits > 0 {
		stats.OccupancyRate = int(math.Round(float64(stats.OccupiedUnits) / float64(stats.TotalUnits) * 100))
	}
	return stats, nil
}
