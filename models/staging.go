package models

import "time"

// ReservationStaging is the landing table of the external import feed.
// Columns are kept as raw text; nothing in this service reads or writes them.
type ReservationStaging struct {
	ID            uint      `gorm:"primaryKey"`
	ClientName    string    `gorm:"type:varchar(100)"`
	ClientSurname string    `gorm:"type:varchar(100)"`
	ClientEmail   string    `gorm:"type:varchar(150)"`
	ClientPhone   string    `gorm:"type:varchar(20)"`
	RoomNumber    string    `gorm:"type:varchar(10)"`
	RoomType      string    `gorm:"type:varchar(50)"`
	ArrivalDate   string    `gorm:"type:varchar(20)"`
	DepartureDate string    `gorm:"type:varchar(20)"`
	PartySize     string    `gorm:"type:varchar(10)"`
	NightlyPrice  string    `gorm:"type:varchar(20)"`
	Status        string    `gorm:"type:varchar(20)"`
	ImportedAt    time.Time `gorm:"autoCreateTime"`
	Processed     bool      `gorm:"not null;default:false"`
}

func (ReservationStaging) TableName() string {
	return "reservations_staging"
}
