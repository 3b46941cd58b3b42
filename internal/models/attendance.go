package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/appdotbuilder/mobile-attendance/internal/geofence"
)

type AttendanceStatus string

const (
	AttendancePending  AttendanceStatus = "PENDING"
	AttendanceApproved AttendanceStatus = "APPROVED"
	AttendanceRejected AttendanceStatus = "REJECTED"
)

// GPSSignals is the set of known provider-level signals a client reports
// alongside a submission. Kept as an explicit struct so the column stays
// checkable instead of an open-ended map.
type GPSSignals struct {
	Provider            string  `json:"provider,omitempty"`
	SatelliteCount      int     `json:"satelliteCount,omitempty"`
	MockProviderPresent bool    `json:"mockProviderPresent,omitempty"`
	FixAgeSeconds       float64 `json:"fixAgeSeconds,omitempty"`
}

type AttendanceRecord struct {
	ID               uuid.UUID                      `gorm:"type:char(36);primaryKey" json:"id"`
	UserID           uuid.UUID                      `gorm:"type:char(36);index;not null" json:"userId"`
	PhotoData        string                         `gorm:"type:longtext;not null" json:"-"`
	PhotoMimeType    string                         `gorm:"size:50;not null;default:image/jpeg" json:"photoMimeType"`
	Latitude         float64                        `gorm:"not null" json:"latitude"`
	Longitude        float64                        `gorm:"not null" json:"longitude"`
	LocationAccuracy *float64                       `json:"locationAccuracy,omitempty"`
	Address          *string                        `gorm:"size:500" json:"address,omitempty"`
	IsMockLocation   bool                           `gorm:"not null;default:false" json:"isMockLocation"`
	GPSSignals       datatypes.JSONType[GPSSignals] `json:"gpsSignals"`
	Description      string                         `gorm:"size:500;not null" json:"description"`
	SubmittedAt      time.Time                      `gorm:"index;not null" json:"submittedAt"`
	CreatedAt        time.Time                      `json:"createdAt"`
	Status           AttendanceStatus               `gorm:"size:20;index;not null;default:PENDING" json:"status"`
	IsValid          bool                           `gorm:"not null;default:true" json:"isValid"`
	RejectionReason  *string                        `gorm:"size:500" json:"rejectionReason,omitempty"`
	User             *User                          `gorm:"foreignKey:UserID" json:"-"`
}

func (r *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type AttendanceSubmission struct {
	UserID           uuid.UUID   `json:"userId" validate:"required"`
	PhotoData        string      `json:"photoData" validate:"required"`
	PhotoMimeType    string      `json:"photoMimeType" validate:"omitempty,max=50"`
	Latitude         float64     `json:"latitude" validate:"latitude"`
	Longitude        float64     `json:"longitude" validate:"longitude"`
	LocationAccuracy *float64    `json:"locationAccuracy,omitempty" validate:"omitempty,gte=0"`
	Address          *string     `json:"address,omitempty" validate:"omitempty,max=500"`
	Description      string      `json:"description" validate:"required,max=500"`
	IsMockLocation   bool        `json:"isMockLocation"`
	GPSSignals       *GPSSignals `json:"gpsSignals,omitempty"`
}

func (r AttendanceSubmission) Validate() error { return validate.Struct(r) }

// Coordinate converts the submitted position into the validator's input type.
func (r AttendanceSubmission) Coordinate() geofence.Coordinate {
	return geofence.Coordinate{
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		AccuracyMeters: r.LocationAccuracy,
	}
}

// ToRecord builds the persistent record for this submission. Status and
// validity are left at their zero values for the caller to fill from the
// validation verdict.
func (r AttendanceSubmission) ToRecord() AttendanceRecord {
	mime := r.PhotoMimeType
	if mime == "" {
		mime = "image/jpeg"
	}
	rec := AttendanceRecord{
		UserID:           r.UserID,
		PhotoData:        r.PhotoData,
		PhotoMimeType:    mime,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		LocationAccuracy: r.LocationAccuracy,
		Address:          r.Address,
		IsMockLocation:   r.IsMockLocation,
		Description:      r.Description,
	}
	if r.GPSSignals != nil {
		rec.GPSSignals = datatypes.NewJSONType(*r.GPSSignals)
	}
	return rec
}

type AttendanceUpdate struct {
	Status          *AttendanceStatus `json:"status,omitempty" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	IsValid         *bool             `json:"isValid,omitempty"`
	RejectionReason *string           `json:"rejectionReason,omitempty" validate:"omitempty,max=500"`
}

func (r AttendanceUpdate) Validate() error { return validate.Struct(r) }

func (r AttendanceUpdate) ApplyTo(rec *AttendanceRecord) {
	if r.Status != nil {
		rec.Status = *r.Status
	}
	if r.IsValid != nil {
		rec.IsValid = *r.IsValid
	}
	if r.RejectionReason != nil {
		rec.RejectionReason = r.RejectionReason
	}
}

// AttendanceRecordResponse joins a record with the owning user's display
// fields for API responses.
type AttendanceRecordResponse struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"userId"`
	UserName        string           `json:"userName"`
	UserEmployeeID  string           `json:"userEmployeeId"`
	Latitude        float64          `json:"latitude"`
	Longitude       float64          `json:"longitude"`
	Address         *string          `json:"address,omitempty"`
	Description     string           `json:"description"`
	IsMockLocation  bool             `json:"isMockLocation"`
	Status          AttendanceStatus `json:"status"`
	IsValid         bool             `json:"isValid"`
	SubmittedAt     time.Time        `json:"submittedAt"`
	RejectionReason *string          `json:"rejectionReason,omitempty"`
}

func NewAttendanceRecordResponse(rec AttendanceRecord, user User) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:              rec.ID,
		UserID:          rec.UserID,
		UserName:        user.Name,
		UserEmployeeID:  user.EmployeeID,
		Latitude:        rec.Latitude,
		Longitude:       rec.Longitude,
		Address:         rec.Address,
		Description:     rec.Description,
		IsMockLocation:  rec.IsMockLocation,
		Status:          rec.Status,
		IsValid:         rec.IsValid,
		SubmittedAt:     rec.SubmittedAt,
		RejectionReason: rec.RejectionReason,
	}
}
