package dto

import (
	"time"

	"hotel-reservation-api/models"
)

// ClientInput is a decoded client payload; nil means the field was absent
type ClientInput struct {
	Name    *string `json:"name" validate:"omitnil,min=1,max=100"`
	Surname *string `json:"surname" validate:"omitnil,min=1,max=100"`
	Email   *string `json:"email" validate:"omitnil,email,max=150"`
	Phone   *string `json:"phone" validate:"omitnil,max=20"`
}

type ClientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func NewClientResponse(client models.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Surname:   client.Surname,
		Email:     client.Email,
		Phone:     client.Phone,
		CreatedAt: client.CreatedAt,
	}
}

// ClientDetailResponse is a client with its reservations. The nested
// reservations leave out the client they belong to.
type ClientDetailResponse struct {
	ClientResponse
	Reservations []ReservationResponse `json:"reservations"`
}

func NewClientDetailResponse(client models.Client) ClientDetailResponse {
	reservations := make([]ReservationResponse, 0, len(client.Reservations))
	for _, r := range client.Reservations {
		r.Client = nil
		reservations = append(reservations, NewReservationResponse(r))
	}
	return ClientDetailResponse{
		ClientResponse: NewClientResponse(client),
		Reservations:   reservations,
	}
}
