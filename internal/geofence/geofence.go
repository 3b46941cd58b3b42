// Package geofence decides whether a submitted GPS coordinate falls inside a
// trusted attendance zone. The validator is a pure function over its inputs:
// policy outcomes (outside all zones, mock GPS, poor accuracy) are reported
// through the verdict, never as errors, so a rejected submission can still be
// stored with an explanation.
package geofence

import (
	"errors"
	"math"
)

const (
	// DefaultMaxAccuracyMeters is the accuracy ceiling applied by zones with
	// strict validation when no override is configured.
	DefaultMaxAccuracyMeters = 50.0

	// DefaultEarthRadiusMeters is the mean Earth radius used for
	// great-circle distances.
	DefaultEarthRadiusMeters = 6371000.0
)

var ErrInvalidCoordinate = errors.New("geofence: coordinate out of range")

// Coordinate is a WGS 84 position with an optional reported accuracy.
type Coordinate struct {
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	AccuracyMeters *float64 `json:"accuracyMeters,omitempty"`
}

// Check reports ErrInvalidCoordinate when latitude, longitude or accuracy
// are outside their valid ranges.
func (c Coordinate) Check() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return ErrInvalidCoordinate
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidCoordinate
	}
	if c.AccuracyMeters != nil && *c.AccuracyMeters < 0 {
		return ErrInvalidCoordinate
	}
	return nil
}

// Zone is a circular trusted area. The validator only reads zones; ownership
// stays with the caller, which must pass an immutable snapshot per call.
type Zone struct {
	ID                string
	Center            Coordinate
	RadiusMeters      float64
	Active            bool
	AllowMockLocation bool
	StrictValidation  bool
}

type RejectionReason string

const (
	ReasonOutsideAllZones      RejectionReason = "OUTSIDE_ALL_ZONES"
	ReasonNoZonesConfigured    RejectionReason = "NO_ZONES_CONFIGURED"
	ReasonMockLocationRejected RejectionReason = "MOCK_LOCATION_REJECTED"
	ReasonAccuracyTooLow       RejectionReason = "ACCURACY_TOO_LOW"
)

// Verdict is the outcome of a single validation call. DistanceMeters is the
// distance to the matched zone center when a zone matched, the distance to
// the nearest active zone center otherwise, and absent when no active zones
// exist.
type Verdict struct {
	MatchedZoneID   string          `json:"matchedZoneId,omitempty"`
	DistanceMeters  *float64        `json:"distanceMeters,omitempty"`
	InsideAnyZone   bool            `json:"insideAnyZone"`
	MockLocation    bool            `json:"mockLocation"`
	Accepted        bool            `json:"accepted"`
	RejectionReason RejectionReason `json:"rejectionReason,omitempty"`
}

// Config carries the tunable policy values. Zero values fall back to the
// package defaults.
type Config struct {
	MaxAccuracyMeters float64
	EarthRadiusMeters float64
}

type Validator struct {
	cfg Config
}

func NewValidator(cfg Config) *Validator {
	if cfg.MaxAccuracyMeters <= 0 {
		cfg.MaxAccuracyMeters = DefaultMaxAccuracyMeters
	}
	if cfg.EarthRadiusMeters <= 0 {
		cfg.EarthRadiusMeters = DefaultEarthRadiusMeters
	}
	return &Validator{cfg: cfg}
}

// Validate matches the coordinate against the active zones and applies the
// mock-location and accuracy policies of the matched zone. Inactive zones
// never match. Among overlapping matches the nearest zone wins; equal
// distances resolve to the lowest zone ID.
func (v *Validator) Validate(at Coordinate, mockLocation bool, zones []Zone) (Verdict, error) {
	if err := at.Check(); err != nil {
		return Verdict{}, err
	}

	verdict := Verdict{MockLocation: mockLocation}

	var (
		nearest     = math.Inf(1)
		matched     *Zone
		matchedDist float64
		anyActive   bool
	)
	for i := range zones {
		zone := &zones[i]
		if !zone.Active {
			continue
		}
		anyActive = true

		dist := haversine(v.cfg.EarthRadiusMeters, at, zone.Center)
		if dist < nearest {
			nearest = dist
		}
		if dist > zone.RadiusMeters {
			continue
		}
		if matched == nil || dist < matchedDist || (dist == matchedDist && zone.ID < matched.ID) {
			matched = zone
			matchedDist = dist
		}
	}

	if !anyActive {
		verdict.RejectionReason = ReasonNoZonesConfigured
		return verdict, nil
	}

	if matched == nil {
		verdict.DistanceMeters = &nearest
		verdict.RejectionReason = ReasonOutsideAllZones
		return verdict, nil
	}

	verdict.MatchedZoneID = matched.ID
	verdict.DistanceMeters = &matchedDist
	verdict.InsideAnyZone = true

	switch {
	case mockLocation && !matched.AllowMockLocation:
		verdict.RejectionReason = ReasonMockLocationRejected
	case matched.StrictValidation && at.AccuracyMeters != nil && *at.AccuracyMeters > v.cfg.MaxAccuracyMeters:
		verdict.RejectionReason = ReasonAccuracyTooLow
	default:
		verdict.Accepted = true
	}
	return verdict, nil
}
