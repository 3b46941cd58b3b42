package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/mobile-attendance/internal/geofence"
)

func TestLoad(t *testing.T) {
	t.Run("missing dsn", func(t *testing.T) {
		t.Setenv("DB_DSN", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/attendance")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "local", cfg.AppEnv)
		assert.Equal(t, geofence.DefaultMaxAccuracyMeters, cfg.GeofenceMaxAccuracy)
		assert.Equal(t, 587, cfg.SmtpPort)
		assert.False(t, cfg.SMTPConfigured())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/attendance")
		t.Setenv("GEOFENCE_MAX_ACCURACY_M", "75")
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("SMTP_FROM", "HR <hr@example.com>")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 75.0, cfg.Geofence().MaxAccuracyMeters)
		assert.True(t, cfg.SMTPConfigured())
	})

	t.Run("bad accuracy falls back", func(t *testing.T) {
		t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/attendance")
		t.Setenv("GEOFENCE_MAX_ACCURACY_M", "not-a-number")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, geofence.DefaultMaxAccuracyMeters, cfg.GeofenceMaxAccuracy)
	})
}
