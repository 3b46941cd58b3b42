package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/appdotbuilder/mobile-attendance/internal/models"
)

// recentLimit bounds per-user history listings; there is no pagination.
const recentLimit = 50

type AttendanceStore struct {
	DB *gorm.DB
}

func NewAttendanceStore(db *gorm.DB) *AttendanceStore {
	return &AttendanceStore{DB: db}
}

func (s *AttendanceStore) Create(rec *models.AttendanceRecord) error {
	return s.DB.Create(rec).Error
}

func (s *AttendanceStore) Get(id uuid.UUID) (models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	err := s.DB.First(&rec, "id = ?", id).Error
	return rec, err
}

func (s *AttendanceStore) Save(rec *models.AttendanceRecord) error {
	return s.DB.Save(rec).Error
}

func (s *AttendanceStore) ListRecentByUser(userID uuid.UUID) ([]models.AttendanceRecord, error) {
	var recs []models.AttendanceRecord
	err := s.DB.Where("user_id = ?", userID).
		Order("submitted_at desc").
		Limit(recentLimit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *AttendanceStore) ListByStatus(status models.AttendanceStatus) ([]models.AttendanceRecord, error) {
	var recs []models.AttendanceRecord
	err := s.DB.Where("status = ?", status).
		Order("submitted_at asc").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
