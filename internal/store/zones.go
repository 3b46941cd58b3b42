package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/appdotbuilder/mobile-attendance/internal/geofence"
	"github.com/appdotbuilder/mobile-attendance/internal/models"
)

type ZoneStore struct {
	DB *gorm.DB
}

func NewZoneStore(db *gorm.DB) *ZoneStore {
	return &ZoneStore{DB: db}
}

// ListActive returns the zones currently eligible for matching.
func (s *ZoneStore) ListActive() ([]models.TrustedZone, error) {
	var zones []models.TrustedZone
	if err := s.DB.Where("is_active = ?", true).Order("created_at asc").Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

// ActiveGeofenceZones returns the active zones as a validator-ready
// snapshot. The slice is freshly built per call; callers own it for the
// duration of a validation.
func (s *ZoneStore) ActiveGeofenceZones() ([]geofence.Zone, error) {
	rows, err := s.ListActive()
	if err != nil {
		return nil, err
	}
	zones := make([]geofence.Zone, 0, len(rows))
	for _, row := range rows {
		zones = append(zones, row.GeofenceZone())
	}
	return zones, nil
}

func (s *ZoneStore) List() ([]models.TrustedZone, error) {
	var zones []models.TrustedZone
	if err := s.DB.Order("created_at asc").Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

func (s *ZoneStore) Get(id uuid.UUID) (models.TrustedZone, error) {
	var zone models.TrustedZone
	err := s.DB.First(&zone, "id = ?", id).Error
	return zone, err
}

func (s *ZoneStore) Create(zone *models.TrustedZone) error {
	return s.DB.Create(zone).Error
}

func (s *ZoneStore) Update(id uuid.UUID, upd models.TrustedZoneUpdate) (models.TrustedZone, error) {
	zone, err := s.Get(id)
	if err != nil {
		return zone, err
	}
	upd.ApplyTo(&zone)
	if err := s.DB.Save(&zone).Error; err != nil {
		return zone, err
	}
	return zone, nil
}

func (s *ZoneStore) Delete(id uuid.UUID) error {
	return s.DB.Delete(&models.TrustedZone{}, "id = ?", id).Error
}
