package service

import (
	"gorm.io/gorm"

	"github.com/appdotbuilder/mobile-attendance/internal/config"
	"github.com/appdotbuilder/mobile-attendance/internal/email"
	"github.com/appdotbuilder/mobile-attendance/internal/geofence"
	"github.com/appdotbuilder/mobile-attendance/internal/store"
)

// NewDefaultAttendanceService wires the gorm-backed stores, the configured
// geofence policy and, when SMTP is configured, the rejection notifier.
func NewDefaultAttendanceService(database *gorm.DB, cfg config.Config) *AttendanceService {
	var notifier RejectionNotifier
	if cfg.SMTPConfigured() {
		notifier = email.NewNotifier(email.Config{
			Host:     cfg.SmtpHost,
			Port:     cfg.SmtpPort,
			Username: cfg.SmtpUser,
			Password: cfg.SmtpPass,
			From:     cfg.SmtpFrom,
		})
	}

	return NewAttendanceService(
		store.NewUserStore(database),
		store.NewZoneStore(database),
		store.NewAttendanceStore(database),
		geofence.NewValidator(cfg.Geofence()),
		notifier,
	)
}
