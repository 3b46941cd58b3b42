package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/appdotbuilder/mobile-attendance/internal/geofence"
)

type Config struct {
	AppEnv              string
	DbDsn               string
	GeofenceMaxAccuracy float64
	SmtpHost            string
	SmtpPort            int
	SmtpUser            string
	SmtpPass            string
	SmtpFrom            string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:              getEnv("APP_ENV", "local"),
		DbDsn:               os.Getenv("DB_DSN"),
		GeofenceMaxAccuracy: getEnvFloat("GEOFENCE_MAX_ACCURACY_M", geofence.DefaultMaxAccuracyMeters),
		SmtpHost:            os.Getenv("SMTP_HOST"),
		SmtpPort:            getEnvInt("SMTP_PORT", 587),
		SmtpUser:            os.Getenv("SMTP_USER"),
		SmtpPass:            os.Getenv("SMTP_PASS"),
		SmtpFrom:            os.Getenv("SMTP_FROM"),
	}

	if cfg.DbDsn == "" {
		return cfg, errors.New("missing env: DB_DSN")
	}

	return cfg, nil
}

// Geofence returns the validation policy derived from the environment.
func (c Config) Geofence() geofence.Config {
	return geofence.Config{MaxAccuracyMeters: c.GeofenceMaxAccuracy}
}

// SMTPConfigured reports whether rejection notices can be sent.
func (c Config) SMTPConfigured() bool {
	return c.SmtpHost != "" && c.SmtpFrom != ""
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
