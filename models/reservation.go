package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation links one client to one room for a stay.
// Deleting a client removes its reservations, deleting a room that is still
// referenced is refused.
type Reservation struct {
	ID            uint            `gorm:"primaryKey"`
	ClientID      uint            `gorm:"not null;index"`
	Client        *Client         `gorm:"foreignKey:ClientID"`
	RoomID        uint            `gorm:"not null;index"`
	Room          *Room           `gorm:"foreignKey:RoomID"`
	ArrivalDate   time.Time       `gorm:"type:date;not null"`
	DepartureDate time.Time       `gorm:"type:date;not null"`
	PartySize     int             `gorm:"not null"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index"`
}
