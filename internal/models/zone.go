package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/appdotbuilder/mobile-attendance/internal/geofence"
)

// TrustedZone is a geofence rule: submissions inside the radius around the
// center are eligible for acceptance, subject to the zone's flags.
type TrustedZone struct {
	ID                uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	CenterLatitude    float64   `gorm:"not null" json:"centerLatitude"`
	CenterLongitude   float64   `gorm:"not null" json:"centerLongitude"`
	RadiusMeters      float64   `gorm:"not null" json:"radiusMeters"`
	IsActive          bool      `gorm:"index;not null;default:true" json:"isActive"`
	AllowMockLocation bool      `gorm:"not null;default:false" json:"allowMockLocation"`
	StrictValidation  bool      `gorm:"not null;default:true" json:"strictValidation"`
	Description       *string   `gorm:"size:500" json:"description,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (z *TrustedZone) BeforeCreate(tx *gorm.DB) error {
	if z.ID == uuid.Nil {
		z.ID = uuid.New()
	}
	return nil
}

// GeofenceZone converts the stored rule into the validator's input type.
func (z TrustedZone) GeofenceZone() geofence.Zone {
	return geofence.Zone{
		ID:                z.ID.String(),
		Center:            geofence.Coordinate{Latitude: z.CenterLatitude, Longitude: z.CenterLongitude},
		RadiusMeters:      z.RadiusMeters,
		Active:            z.IsActive,
		AllowMockLocation: z.AllowMockLocation,
		StrictValidation:  z.StrictValidation,
	}
}

type TrustedZoneCreate struct {
	Name              string  `json:"name" validate:"required,max=100"`
	CenterLatitude    float64 `json:"centerLatitude" validate:"latitude"`
	CenterLongitude   float64 `json:"centerLongitude" validate:"longitude"`
	RadiusMeters      float64 `json:"radiusMeters" validate:"gt=0"`
	AllowMockLocation bool    `json:"allowMockLocation"`
	StrictValidation  *bool   `json:"strictValidation,omitempty"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

func (r TrustedZoneCreate) Validate() error { return validate.Struct(r) }

func (r TrustedZoneCreate) ToZone() TrustedZone {
	strict := true
	if r.StrictValidation != nil {
		strict = *r.StrictValidation
	}
	return TrustedZone{
		Name:              r.Name,
		CenterLatitude:    r.CenterLatitude,
		CenterLongitude:   r.CenterLongitude,
		RadiusMeters:      r.RadiusMeters,
		IsActive:          true,
		AllowMockLocation: r.AllowMockLocation,
		StrictValidation:  strict,
		Description:       r.Description,
	}
}

type TrustedZoneUpdate struct {
	Name              *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	CenterLatitude    *float64 `json:"centerLatitude,omitempty" validate:"omitempty,latitude"`
	CenterLongitude   *float64 `json:"centerLongitude,omitempty" validate:"omitempty,longitude"`
	RadiusMeters      *float64 `json:"radiusMeters,omitempty" validate:"omitempty,gt=0"`
	IsActive          *bool    `json:"isActive,omitempty"`
	AllowMockLocation *bool    `json:"allowMockLocation,omitempty"`
	StrictValidation  *bool    `json:"strictValidation,omitempty"`
	Description       *string  `json:"description,omitempty" validate:"omitempty,max=500"`
}

func (r TrustedZoneUpdate) Validate() error { return validate.Struct(r) }

func (r TrustedZoneUpdate) ApplyTo(z *TrustedZone) {
	if r.Name != nil {
		z.Name = *r.Name
	}
	if r.CenterLatitude != nil {
		z.CenterLatitude = *r.CenterLatitude
	}
	if r.CenterLongitude != nil {
		z.CenterLongitude = *r.CenterLongitude
	}
	if r.RadiusMeters != nil {
		z.RadiusMeters = *r.RadiusMeters
	}
	if r.IsActive != nil {
		z.IsActive = *r.IsActive
	}
	if r.AllowMockLocation != nil {
		z.AllowMockLocation = *r.AllowMockLocation
	}
	if r.StrictValidation != nil {
		z.StrictValidation = *r.StrictValidation
	}
	if r.Description != nil {
		z.Description = r.Description
	}
}
