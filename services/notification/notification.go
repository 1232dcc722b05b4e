package notification

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Reservation event types
const (
	EventReservationCreated   = "reservation.created"
	EventReservationUpdated   = "reservation.updated"
	EventReservationCancelled = "reservation.cancelled"
	EventReservationDeleted   = "reservation.deleted"
	EventReservationCompleted = "reservation.completed"
)

// Event is the message pushed to websocket subscribers
type Event struct {
	Type          string    `json:"type"`
	ReservationID uint      `json:"reservation_id"`
	RoomID        uint      `json:"room_id,omitempty"`
	ClientID      uint      `json:"client_id,omitempty"`
	Status        string    `json:"status,omitempty"`
	At            time.Time `json:"at"`
}

// Service publishes reservation events
type Service interface {
	Publish(event Event) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) Publish(event Event) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.m.Broadcast(payload)
}

// NopService drops every event
type NopService struct{}

func (NopService) Publish(Event) error { return nil }

// EventBuilder assembles an Event stamped with the current time
type EventBuilder struct {
	event Event
}

func NewEventBuilder(eventType string, reservationID uint) *EventBuilder {
	return &EventBuilder{event: Event{Type: eventType, ReservationID: reservationID}}
}

func (b *EventBuilder) WithRoom(roomID uint) *EventBuilder {
	b.event.RoomID = roomID
	return b
}

func (b *EventBuilder) WithClient(clientID uint) *EventBuilder {
	b.event.ClientID = clientID
	return b
}

func (b *EventBuilder) WithStatus(status string) *EventBuilder {
	b.event.Status = status
	return b
}

func (b *EventBuilder) Build() Event {
	b.event.At = time.Now().UTC()
	return b.event
}
