package dto

import (
	"strconv"
	"time"

	"hotel-reservation-api/constants"
	"hotel-reservation-api/models"

	"github.com/shopspring/decimal"
)

// ReservationInput is a decoded reservation payload; nil means the field was absent
type ReservationInput struct {
	ClientID      *int             `json:"client_id" validate:"omitnil,gt=0"`
	RoomID        *int             `json:"room_id" validate:"omitnil,gt=0"`
	ArrivalDate   *time.Time       `json:"arrival_date"`
	DepartureDate *time.Time       `json:"departure_date"`
	PartySize     *int             `json:"party_size" validate:"omitnil,min=1"`
	TotalPrice    *decimal.Decimal `json:"total_price" validate:"omitnil,gte=0,lt=100000000"`
	Status        *string          `json:"status" validate:"omitnil,reservation_status"`
}

// ReservationFilter narrows the reservation list; zero values mean no filter
type ReservationFilter struct {
	Status   string
	ClientID uint
}

// NewReservationFilter builds the filter from raw query values.
// A client_id that is not a positive integer is ignored.
func NewReservationFilter(status, clientID string) ReservationFilter {
	filter := ReservationFilter{Status: status}
	if id, err := strconv.ParseUint(clientID, 10, 64); err == nil && id > 0 {
		filter.ClientID = uint(id)
	}
	return filter
}

type ReservationResponse struct {
	ID            uint            `json:"id"`
	ClientID      uint            `json:"client_id"`
	RoomID        uint            `json:"room_id"`
	ArrivalDate   string          `json:"arrival_date"`
	DepartureDate string          `json:"departure_date"`
	PartySize     int             `json:"party_size"`
	TotalPrice    string          `json:"total_price"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	Client        *ClientResponse `json:"client,omitempty"`
	Room          *RoomResponse   `json:"room,omitempty"`
}

func NewReservationResponse(reservation models.Reservation) ReservationResponse {
	res := ReservationResponse{
		ID:            reservation.ID,
		ClientID:      reservation.ClientID,
		RoomID:        reservation.RoomID,
		ArrivalDate:   reservation.ArrivalDate.Format(constants.DateLayout),
		DepartureDate: reservation.DepartureDate.Format(constants.DateLayout),
		PartySize:     reservation.PartySize,
		TotalPrice:    FormatMoney(reservation.TotalPrice),
		Status:        reservation.Status,
		CreatedAt:     reservation.CreatedAt,
	}
	if reservation.Client != nil {
		client := NewClientResponse(*reservation.Client)
		res.Client = &client
	}
	if reservation.Room != nil {
		room := NewRoomResponse(*reservation.Room)
		res.Room = &room
	}
	return res
}
