package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/mobile-attendance/internal/geofence"
	"github.com/appdotbuilder/mobile-attendance/internal/models"
)

type fakeUsers struct {
	users map[uuid.UUID]models.User
}

func (f *fakeUsers) Get(id uuid.UUID) (models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return models.User{}, errors.New("not found")
	}
	return user, nil
}

type fakeZones struct {
	zones []geofence.Zone
	err   error
}

func (f *fakeZones) ActiveGeofenceZones() ([]geofence.Zone, error) {
	return f.zones, f.err
}

type fakeRecords struct {
	created []models.AttendanceRecord
	saved   []models.AttendanceRecord
	byID    map[uuid.UUID]models.AttendanceRecord
}

func (f *fakeRecords) Create(rec *models.AttendanceRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	f.created = append(f.created, *rec)
	return nil
}

func (f *fakeRecords) Get(id uuid.UUID) (models.AttendanceRecord, error) {
	rec, ok := f.byID[id]
	if !ok {
		return models.AttendanceRecord{}, errors.New("not found")
	}
	return rec, nil
}

func (f *fakeRecords) Save(rec *models.AttendanceRecord) error {
	f.saved = append(f.saved, *rec)
	return nil
}

func (f *fakeRecords) ListRecentByUser(userID uuid.UUID) ([]models.AttendanceRecord, error) {
	var recs []models.AttendanceRecord
	for _, rec := range f.created {
		if rec.UserID == userID {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) SendRejectionNotice(to string, name string, reason string) error {
	f.sent = append(f.sent, to+":"+reason)
	return nil
}

type fixture struct {
	svc      *AttendanceService
	user     models.User
	records  *fakeRecords
	notifier *fakeNotifier
}

func newFixture(zones []geofence.Zone) fixture {
	user := models.User{
		ID:         uuid.New(),
		EmployeeID: "EMP-001",
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		IsActive:   true,
	}
	records := &fakeRecords{byID: map[uuid.UUID]models.AttendanceRecord{}}
	notifier := &fakeNotifier{}
	svc := NewAttendanceService(
		&fakeUsers{users: map[uuid.UUID]models.User{user.ID: user}},
		&fakeZones{zones: zones},
		records,
		geofence.NewValidator(geofence.Config{}),
		notifier,
	)
	return fixture{svc: svc, user: user, records: records, notifier: notifier}
}

func hqZone() geofence.Zone {
	return geofence.Zone{
		ID:           "hq",
		Center:       geofence.Coordinate{Latitude: 37.7749, Longitude: -122.4194},
		RadiusMeters: 100,
		Active:       true,
	}
}

func submissionFor(user models.User) models.AttendanceSubmission {
	return models.AttendanceSubmission{
		UserID:      user.ID,
		PhotoData:   "dGVzdA==",
		Latitude:    37.7750,
		Longitude:   -122.4194,
		Description: "morning check-in",
	}
}

func TestSubmitAccepted(t *testing.T) {
	fx := newFixture([]geofence.Zone{hqZone()})

	resp, err := fx.svc.Submit(submissionFor(fx.user))
	require.NoError(t, err)

	assert.Equal(t, models.AttendancePending, resp.Status)
	assert.True(t, resp.IsValid)
	assert.Nil(t, resp.RejectionReason)
	assert.Equal(t, "Ada Lovelace", resp.UserName)
	assert.Equal(t, "EMP-001", resp.UserEmployeeID)
	assert.False(t, resp.SubmittedAt.IsZero())

	require.Len(t, fx.records.created, 1)
	assert.Equal(t, models.AttendancePending, fx.records.created[0].Status)
	assert.Empty(t, fx.notifier.sent)
}

func TestSubmitRejectedIsStored(t *testing.T) {
	fx := newFixture([]geofence.Zone{hqZone()})

	sub := submissionFor(fx.user)
	sub.Latitude = 37.7800 // well outside the zone

	resp, err := fx.svc.Submit(sub)
	require.NoError(t, err)

	assert.Equal(t, models.AttendanceRejected, resp.Status)
	assert.False(t, resp.IsValid)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, string(geofence.ReasonOutsideAllZones), *resp.RejectionReason)

	require.Len(t, fx.records.created, 1)
	require.Len(t, fx.notifier.sent, 1)
	assert.Equal(t, "ada@example.com:OUTSIDE_ALL_ZONES", fx.notifier.sent[0])
}

func TestSubmitMockLocationRejected(t *testing.T) {
	fx := newFixture([]geofence.Zone{hqZone()})

	sub := submissionFor(fx.user)
	sub.IsMockLocation = true

	resp, err := fx.svc.Submit(sub)
	require.NoError(t, err)

	assert.Equal(t, models.AttendanceRejected, resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, string(geofence.ReasonMockLocationRejected), *resp.RejectionReason)
}

func TestSubmitNoZonesConfigured(t *testing.T) {
	fx := newFixture(nil)

	resp, err := fx.svc.Submit(submissionFor(fx.user))
	require.NoError(t, err)

	assert.Equal(t, models.AttendanceRejected, resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, string(geofence.ReasonNoZonesConfigured), *resp.RejectionReason)
}

func TestSubmitUserChecks(t *testing.T) {
	fx := newFixture([]geofence.Zone{hqZone()})

	t.Run("unknown user", func(t *testing.T) {
		sub := submissionFor(fx.user)
		sub.UserID = uuid.New()
		_, err := fx.svc.Submit(sub)
		assert.ErrorIs(t, err, ErrUnknownUser)
	})

	t.Run("inactive user", func(t *testing.T) {
		inactive := fx.user
		inactive.ID = uuid.New()
		inactive.IsActive = false
		svcUsers := &fakeUsers{users: map[uuid.UUID]models.User{inactive.ID: inactive}}
		svc := NewAttendanceService(svcUsers, &fakeZones{}, &fakeRecords{}, geofence.NewValidator(geofence.Config{}), nil)

		_, err := svc.Submit(submissionFor(inactive))
		assert.ErrorIs(t, err, ErrInactiveUser)
	})

	t.Run("malformed submission", func(t *testing.T) {
		sub := submissionFor(fx.user)
		sub.PhotoData = ""
		_, err := fx.svc.Submit(sub)
		assert.Error(t, err)
	})
}

func TestReview(t *testing.T) {
	fx := newFixture([]geofence.Zone{hqZone()})

	resp, err := fx.svc.Submit(submissionFor(fx.user))
	require.NoError(t, err)
	fx.records.byID[resp.ID] = fx.records.created[0]

	status := models.AttendanceApproved
	rec, err := fx.svc.Review(resp.ID, models.AttendanceUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.AttendanceApproved, rec.Status)
	require.Len(t, fx.records.saved, 1)

	t.Run("invalid status", func(t *testing.T) {
		bad := models.AttendanceStatus("ARCHIVED")
		_, err := fx.svc.Review(resp.ID, models.AttendanceUpdate{Status: &bad})
		assert.Error(t, err)
	})
}

func TestListForUser(t *testing.T) {
	fx := newFixture([]geofence.Zone{hqZone()})

	_, err := fx.svc.Submit(submissionFor(fx.user))
	require.NoError(t, err)

	responses, err := fx.svc.ListForUser(fx.user.ID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "Ada Lovelace", responses[0].UserName)

	_, err = fx.svc.ListForUser(uuid.New())
	assert.ErrorIs(t, err, ErrUnknownUser)
}
