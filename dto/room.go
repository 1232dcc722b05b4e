package dto

import (
	"strings"

	"hotel-reservation-api/models"

	"github.com/shopspring/decimal"
)

// RoomInput is a decoded room payload; nil means the field was absent
type RoomInput struct {
	Number       *string          `json:"number" validate:"omitnil,min=1,max=10"`
	Type         *string          `json:"type" validate:"omitnil,room_type"`
	NightlyPrice *decimal.Decimal `json:"nightly_price" validate:"omitnil,gt=0,lt=100000000"`
	Capacity     *int             `json:"capacity" validate:"omitnil,min=1"`
	Available    *bool            `json:"available"`
}

// RoomFilter narrows the room list; zero values mean no filter
type RoomFilter struct {
	Type      string
	Available *bool
}

// NewRoomFilter builds the filter from raw query values.
// Any availability value other than "true" (case-insensitive) means false.
func NewRoomFilter(roomType string, available string, hasAvailable bool) RoomFilter {
	filter := RoomFilter{Type: roomType}
	if hasAvailable {
		value := strings.EqualFold(strings.TrimSpace(available), "true")
		filter.Available = &value
	}
	return filter
}

type RoomResponse struct {
	ID           uint   `json:"id"`
	Number       string `json:"number"`
	Type         string `json:"type"`
	NightlyPrice string `json:"nightly_price"`
	Capacity     int    `json:"capacity"`
	Available    bool   `json:"available"`
}

func NewRoomResponse(room models.Room) RoomResponse {
	return RoomResponse{
		ID:           room.ID,
		Number:       room.Number,
		Type:         room.Type,
		NightlyPrice: FormatMoney(room.NightlyPrice),
		Capacity:     room.Capacity,
		Available:    room.Available,
	}
}

// FormatMoney renders a currency amount with exactly two decimals
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
