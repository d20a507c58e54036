package database

import (
	"github.com/chachabrian/covoiturage-backend/internal/models"
	"gorm.io/gorm"
)

// RunMigrations creates or updates the four tables. Drivers go first so
// the trip foreign key has a target.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Passenger{},
		&models.Driver{},
		&models.Trip{},
		&models.Reservation{},
	)
}
