package services

import (
	"context"

	"hotel-reservation-api/constants"
	"hotel-reservation-api/dto"
	apperrors "hotel-reservation-api/errors"
	"hotel-reservation-api/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(opts ServiceOptions) *StatsService {
	return &StatsService{db: opts.DB}
}

// Get counts clients, rooms and reservations. Occupied rooms are the ones not
// flagged available.
func (s *StatsService) Get(ctx context.Context) (*dto.Stats, error) {
	var stats dto.Stats
	db := s.db.WithContext(ctx)

	counts := []struct {
		model interface{}
		where []interface{}
		dst   *int64
	}{
		{&models.Client{}, nil, &stats.Clients},
		{&models.Room{}, nil, &stats.Rooms.Total},
		{&models.Room{}, []interface{}{"available = ?", true}, &stats.Rooms.Available},
		{&models.Reservation{}, nil, &stats.Reservations.Total},
		{&models.Reservation{}, []interface{}{"status = ?", constants.ReservationStatusConfirmed}, &stats.Reservations.Confirmed},
		{&models.Reservation{}, []interface{}{"status = ?", constants.ReservationStatusCancelled}, &stats.Reservations.Cancelled},
	}

	for _, c := range counts {
		query := db.Model(c.model)
		if len(c.where) > 0 {
			query = query.Where(c.where[0], c.where[1:]...)
		}
		if err := query.Count(c.dst).Error; err != nil {
			return nil, apperrors.Database(err)
		}
	}

	stats.Rooms.Occupied = stats.Rooms.Total - stats.Rooms.Available
	return &stats, nil
}
