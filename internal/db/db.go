package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/appdotbuilder/mobile-attendance/internal/models"
)

func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.AttendanceRecord{},
		&models.TrustedZone{},
	); err != nil {
		return nil, err
	}

	return database, nil
}
