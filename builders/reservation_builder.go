package builders

import (
	"fmt"
	"time"

	"hotel-reservation-api/constants"
	apperrors "hotel-reservation-api/errors"
	"hotel-reservation-api/models"

	"github.com/shopspring/decimal"
)

// MaxTotalPrice is the exclusive upper bound of a numeric(10,2) amount
var MaxTotalPrice = decimal.New(1, 8)

// ReservationBuilder assembles a reservation step by step
type ReservationBuilder struct {
	reservation *models.Reservation
	totalPrice  *decimal.Decimal
}

// NewReservationBuilder creates an empty builder
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{},
	}
}

// WithClient links the reservation to a client
func (b *ReservationBuilder) WithClient(client *models.Client) *ReservationBuilder {
	b.reservation.ClientID = client.ID
	b.reservation.Client = client
	return b
}

// WithRoom links the reservation to a room
func (b *ReservationBuilder) WithRoom(room *models.Room) *ReservationBuilder {
	b.reservation.RoomID = room.ID
	b.reservation.Room = room
	return b
}

// WithStay sets arrival and departure dates
func (b *ReservationBuilder) WithStay(arrival, departure time.Time) *ReservationBuilder {
	b.reservation.ArrivalDate = DateOnly(arrival)
	b.reservation.DepartureDate = DateOnly(departure)
	return b
}

func (b *ReservationBuilder) WithPartySize(size int) *ReservationBuilder {
	b.reservation.PartySize = size
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.reservation.Status = status
	return b
}

// WithTotalPrice overrides the computed price
func (b *ReservationBuilder) WithTotalPrice(price decimal.Decimal) *ReservationBuilder {
	b.totalPrice = &price
	return b
}

// Build fills the derived fields: the total price defaults to nights x nightly
// price and the status defaults to confirmed. A total that does not fit the
// price column is a validation error on total_price.
func (b *ReservationBuilder) Build() (*models.Reservation, error) {
	r := b.reservation
	switch {
	case b.totalPrice != nil:
		r.TotalPrice = b.totalPrice.Round(2)
	case r.Room != nil:
		r.TotalPrice = TotalPrice(r.Room.NightlyPrice, Nights(r.ArrivalDate, r.DepartureDate))
	}
	if r.TotalPrice.GreaterThanOrEqual(MaxTotalPrice) {
		return nil, apperrors.NewValidationError(map[string]string{
			"total_price": fmt.Sprintf("Must be less than %s.", MaxTotalPrice.String()),
		})
	}
	if r.Status == "" {
		r.Status = constants.ReservationStatusConfirmed
	}
	return r, nil
}
