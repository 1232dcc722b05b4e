package services

import (
	"context"
	"time"

	"hotel-reservation-api/builders"
	"hotel-reservation-api/constants"
	"hotel-reservation-api/dto"
	apperrors "hotel-reservation-api/errors"
	"hotel-reservation-api/models"
	"hotel-reservation-api/services/logger"
	"hotel-reservation-api/services/notification"
	"hotel-reservation-api/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationService struct {
	db       *gorm.DB
	logger   logger.Logger
	notifier notification.Service
}

func NewReservationService(opts ServiceOptions) *ReservationService {
	opts = opts.withDefaults()
	return &ReservationService{
		db:       opts.DB,
		logger:   opts.Logger,
		notifier: opts.Notifier,
	}
}

// Create books a room for a client. The room row stays locked from the
// availability check until the insert commits.
func (s *ReservationService) Create(ctx context.Context, in *dto.ReservationInput) (*models.Reservation, error) {
	var reservation *models.Reservation

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, deref(in.ClientID)).Error; err != nil {
			return lookupError(err, apperrors.ErrClientNotFound)
		}

		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, deref(in.RoomID)).Error; err != nil {
			return lookupError(err, apperrors.ErrRoomNotFound)
		}
		if !room.Available {
			return apperrors.DomainRule(apperrors.ErrRoomNotAvailable)
		}

		builder := builders.NewReservationBuilder().
			WithClient(&client).
			WithRoom(&room).
			WithStay(deref(in.ArrivalDate), deref(in.DepartureDate)).
			WithPartySize(deref(in.PartySize))
		if in.TotalPrice != nil {
			builder.WithTotalPrice(*in.TotalPrice)
		}
		if in.Status != nil {
			builder.WithStatus(*in.Status)
		}
		built, err := builder.Build()
		if err != nil {
			return err
		}
		reservation = built

		return tx.Omit(clause.Associations).Create(reservation).Error
	})
	if err != nil {
		return nil, s.writeError("create reservation", err)
	}

	s.logger.Info("reservation %d created for room %d", reservation.ID, reservation.RoomID)
	s.publish(notification.EventReservationCreated, reservation)
	return reservation, nil
}

func (s *ReservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.load(s.db.WithContext(ctx), id)
}

// Update overwrites the fields present in the input. Changed client or room
// references must exist; room availability is not re-checked.
func (s *ReservationService) Update(ctx context.Context, id uint, in *dto.ReservationInput) (*models.Reservation, error) {
	var reservation models.Reservation

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			return lookupError(err, apperrors.ErrReservationNotFound)
		}

		if in.ClientID != nil {
			if err := tx.Select("id").First(&models.Client{}, *in.ClientID).Error; err != nil {
				return lookupError(err, apperrors.ErrClientNotFound)
			}
		}
		if in.RoomID != nil {
			if err := tx.Select("id").First(&models.Room{}, *in.RoomID).Error; err != nil {
				return lookupError(err, apperrors.ErrRoomNotFound)
			}
		}

		applyReservationInput(&reservation, in)
		if err := validator.CheckStay(reservation.ArrivalDate, reservation.DepartureDate); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&reservation).Error
	})
	if err != nil {
		return nil, s.writeError("update reservation", err)
	}

	s.publish(notification.EventReservationUpdated, &reservation)
	return s.load(s.db.WithContext(ctx), id)
}

// Cancel sets the status to cancelled whatever it was before
func (s *ReservationService) Cancel(ctx context.Context, id uint) (*models.Reservation, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			return lookupError(err, apperrors.ErrReservationNotFound)
		}
		return tx.Model(&reservation).Update("status", constants.ReservationStatusCancelled).Error
	})
	if err != nil {
		return nil, s.writeError("cancel reservation", err)
	}

	reservation, err := s.load(s.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("reservation %d cancelled", id)
	s.publish(notification.EventReservationCancelled, reservation)
	return reservation, nil
}

func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	var reservation models.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			return lookupError(err, apperrors.ErrReservationNotFound)
		}
		return tx.Delete(&reservation).Error
	})
	if err != nil {
		return s.writeError("delete reservation", err)
	}

	s.publish(notification.EventReservationDeleted, &reservation)
	return nil
}

// List returns reservations matching the filter, newest first
func (s *ReservationService) List(ctx context.Context, filter dto.ReservationFilter, q dto.ListQuery) (dto.Page[models.Reservation], error) {
	page := dto.Page[models.Reservation]{Page: q.Page, PerPage: q.PerPage}

	if err := s.db.WithContext(ctx).Model(&models.Reservation{}).Scopes(reservationFilter(filter)).Count(&page.Total).Error; err != nil {
		return page, apperrors.Database(err)
	}

	reservations := make([]models.Reservation, 0, q.PerPage)
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Room").
		Scopes(reservationFilter(filter), paginate(q)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reservations).Error
	if err != nil {
		return page, apperrors.Database(err)
	}
	page.Items = reservations
	return page, nil
}

// CompleteElapsed marks confirmed reservations whose departure date is before
// today as completed and returns how many rows changed. Each completed
// reservation is published once the transaction commits.
func (s *ReservationService) CompleteElapsed(ctx context.Context, today time.Time) (int64, error) {
	var elapsed []models.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ? AND departure_date < ?", constants.ReservationStatusConfirmed, builders.DateOnly(today)).
			Order("id").
			Find(&elapsed).Error
		if err != nil || len(elapsed) == 0 {
			return err
		}

		ids := make([]uint, 0, len(elapsed))
		for _, r := range elapsed {
			ids = append(ids, r.ID)
		}
		return tx.Model(&models.Reservation{}).
			Where("id IN ?", ids).
			Update("status", constants.ReservationStatusCompleted).Error
	})
	if err != nil {
		s.logger.Error("complete elapsed reservations: %v", err)
		return 0, apperrors.Database(err)
	}

	for i := range elapsed {
		elapsed[i].Status = constants.ReservationStatusCompleted
		s.publish(notification.EventReservationCompleted, &elapsed[i])
	}
	if len(elapsed) > 0 {
		s.logger.Info("%d reservations marked completed", len(elapsed))
	}
	return int64(len(elapsed)), nil
}

func (s *ReservationService) load(db *gorm.DB, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := db.Preload("Client").Preload("Room").First(&reservation, id).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrReservationNotFound)
	}
	return &reservation, nil
}

func (s *ReservationService) publish(eventType string, r *models.Reservation) {
	event := notification.NewEventBuilder(eventType, r.ID).
		WithRoom(r.RoomID).
		WithClient(r.ClientID).
		WithStatus(r.Status).
		Build()
	if err := s.notifier.Publish(event); err != nil {
		s.logger.Warn("publish %s for reservation %d: %v", eventType, r.ID, err)
	}
}

func (s *ReservationService) writeError(op string, err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	if isForeignKeyViolation(err) {
		return apperrors.NotFound(apperrors.ErrRoomNotFound)
	}
	s.logger.Error("%s: %v", op, err)
	return passThrough(err)
}

func reservationFilter(filter dto.ReservationFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if filter.ClientID != 0 {
			db = db.Where("client_id = ?", filter.ClientID)
		}
		return db
	}
}

func applyReservationInput(r *models.Reservation, in *dto.ReservationInput) {
	if in.ClientID != nil {
		r.ClientID = uint(*in.ClientID)
	}
	if in.RoomID != nil {
		r.RoomID = uint(*in.RoomID)
	}
	if in.ArrivalDate != nil {
		r.ArrivalDate = builders.DateOnly(*in.ArrivalDate)
	}
	if in.DepartureDate != nil {
		r.DepartureDate = builders.DateOnly(*in.DepartureDate)
	}
	if in.PartySize != nil {
		r.PartySize = *in.PartySize
	}
	if in.TotalPrice != nil {
		r.TotalPrice = in.TotalPrice.Round(2)
	}
	if in.Status != nil {
		r.Status = *in.Status
	}
}
