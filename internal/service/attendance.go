package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/mobile-attendance/internal/geofence"
	"github.com/appdotbuilder/mobile-attendance/internal/models"
)

var (
	ErrUnknownUser  = errors.New("service: unknown user")
	ErrInactiveUser = errors.New("service: user is not active")
)

// UserSource resolves the submitting employee.
type UserSource interface {
	Get(id uuid.UUID) (models.User, error)
}

// ZoneSource supplies a fresh snapshot of active zones per validation call.
type ZoneSource interface {
	ActiveGeofenceZones() ([]geofence.Zone, error)
}

// RecordStore persists attendance records and their review updates.
type RecordStore interface {
	Create(rec *models.AttendanceRecord) error
	Get(id uuid.UUID) (models.AttendanceRecord, error)
	Save(rec *models.AttendanceRecord) error
	ListRecentByUser(userID uuid.UUID) ([]models.AttendanceRecord, error)
}

// RejectionNotifier informs an employee that a submission was rejected.
type RejectionNotifier interface {
	SendRejectionNotice(to string, name string, reason string) error
}

type AttendanceService struct {
	users     UserSource
	zones     ZoneSource
	records   RecordStore
	validator *geofence.Validator
	notifier  RejectionNotifier
}

// NewAttendanceService wires the submission pipeline. notifier may be nil,
// in which case rejections are stored silently.
func NewAttendanceService(users UserSource, zones ZoneSource, records RecordStore, validator *geofence.Validator, notifier RejectionNotifier) *AttendanceService {
	return &AttendanceService{
		users:     users,
		zones:     zones,
		records:   records,
		validator: validator,
		notifier:  notifier,
	}
}

// Submit validates and persists one attendance submission. A submission that
// fails the geofence policy is still stored, with status REJECTED and the
// verdict's reason; only malformed input or storage failures return errors.
func (s *AttendanceService) Submit(sub models.AttendanceSubmission) (models.AttendanceRecordResponse, error) {
	if err := sub.Validate(); err != nil {
		return models.AttendanceRecordResponse{}, err
	}

	user, err := s.users.Get(sub.UserID)
	if err != nil {
		return models.AttendanceRecordResponse{}, ErrUnknownUser
	}
	if !user.IsActive {
		return models.AttendanceRecordResponse{}, ErrInactiveUser
	}

	zones, err := s.zones.ActiveGeofenceZones()
	if err != nil {
		return models.AttendanceRecordResponse{}, fmt.Errorf("load zones: %w", err)
	}

	verdict, err := s.validator.Validate(sub.Coordinate(), sub.IsMockLocation, zones)
	if err != nil {
		return models.AttendanceRecordResponse{}, err
	}

	rec := sub.ToRecord()
	rec.SubmittedAt = time.Now()
	applyVerdict(&rec, verdict)

	if err := s.records.Create(&rec); err != nil {
		return models.AttendanceRecordResponse{}, fmt.Errorf("save attendance: %w", err)
	}

	if !verdict.Accepted && s.notifier != nil {
		if err := s.notifier.SendRejectionNotice(user.Email, user.Name, string(verdict.RejectionReason)); err != nil {
			log.Printf("rejection notice to %s failed: %v", user.Email, err)
		}
	}

	return models.NewAttendanceRecordResponse(rec, user), nil
}

// Review applies an admin status update to a stored record.
func (s *AttendanceService) Review(id uuid.UUID, upd models.AttendanceUpdate) (models.AttendanceRecord, error) {
	if err := upd.Validate(); err != nil {
		return models.AttendanceRecord{}, err
	}
	rec, err := s.records.Get(id)
	if err != nil {
		return rec, err
	}
	upd.ApplyTo(&rec)
	if err := s.records.Save(&rec); err != nil {
		return rec, fmt.Errorf("save review: %w", err)
	}
	return rec, nil
}

// ListForUser returns the user's recent submissions joined with their
// display fields.
func (s *AttendanceService) ListForUser(userID uuid.UUID) ([]models.AttendanceRecordResponse, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return nil, ErrUnknownUser
	}
	recs, err := s.records.ListRecentByUser(userID)
	if err != nil {
		return nil, err
	}
	responses := make([]models.AttendanceRecordResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, models.NewAttendanceRecordResponse(rec, user))
	}
	return responses, nil
}

func applyVerdict(rec *models.AttendanceRecord, verdict geofence.Verdict) {
	if verdict.Accepted {
		rec.Status = models.AttendancePending
		rec.IsValid = true
		return
	}
	rec.Status = models.AttendanceRejected
	rec.IsValid = false
	reason := string(verdict.RejectionReason)
	rec.RejectionReason = &reason
}
