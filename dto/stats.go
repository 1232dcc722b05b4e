package dto

type RoomStats struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Occupied  int64 `json:"occupied"`
}

type ReservationStats struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
}

// Stats is the payload of GET /api/stats
type Stats struct {
	Clients      int64            `json:"clients"`
	Rooms        RoomStats        `json:"rooms"`
	Reservations ReservationStats `json:"reservations"`
}
