package models

import (
	"time"
)

type Client struct {
	ID           uint          `gorm:"primaryKey"`
	Name         string        `gorm:"type:varchar(100);not null"`
	Surname      string        `gorm:"type:varchar(100);not null"`
	Email        string        `gorm:"type:varchar(150);uniqueIndex;not null"`
	Phone        *string       `gorm:"type:varchar(20)"`
	CreatedAt    time.Time     `gorm:"autoCreateTime"`
	Reservations []Reservation `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
