package constants

// Reservation status
const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

// Room type
const (
	RoomTypeSimple = "Simple"
	RoomTypeDouble = "Double"
	RoomTypeSuite  = "Suite"
)

// Pagination
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// DateLayout is the wire format of arrival_date and departure_date
const DateLayout = "2006-01-02"

// ReservationStatuses lists every valid reservation status
var ReservationStatuses = []string{
	ReservationStatusConfirmed,
	ReservationStatusCancelled,
	ReservationStatusCompleted,
}

// RoomTypes lists every valid room type
var RoomTypes = []string{RoomTypeSimple, RoomTypeDouble, RoomTypeSuite}
