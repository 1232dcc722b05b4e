package models

import (
	"github.com/shopspring/decimal"
)

type Room struct {
	ID           uint            `gorm:"primaryKey"`
	Number       string          `gorm:"type:varchar(10);uniqueIndex;not null"`
	Type         string          `gorm:"type:varchar(50);not null;index"`
	NightlyPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Capacity     int             `gorm:"not null"`
	// No gorm default here: a default would make gorm skip an explicit false on insert.
	Available    bool          `gorm:"not null"`
	Reservations []Reservation `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
