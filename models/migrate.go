package models

import "gorm.io/gorm"

// Migrate creates or updates the schema. Order matters: reservations reference
// clients and rooms.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Client{},
		&Room{},
		&Reservation{},
		&ReservationStaging{},
	)
}
