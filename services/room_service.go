package services

import (
	"context"

	"hotel-reservation-api/dto"
	apperrors "hotel-reservation-api/errors"
	"hotel-reservation-api/models"
	"hotel-reservation-api/services/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewRoomService(opts ServiceOptions) *RoomService {
	opts = opts.withDefaults()
	return &RoomService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// Create stores a new room; rooms are available unless the input says otherwise
func (s *RoomService) Create(ctx context.Context, in *dto.RoomInput) (*models.Room, error) {
	room := models.Room{
		Number:    deref(in.Number),
		Type:      deref(in.Type),
		Capacity:  deref(in.Capacity),
		Available: true,
	}
	if in.NightlyPrice != nil {
		room.NightlyPrice = *in.NightlyPrice
	}
	if in.Available != nil {
		room.Available = *in.Available
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := roomNumberTaken(tx, room.Number, 0)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.Conflict(apperrors.ErrRoomNumberTaken)
		}
		return tx.Omit(clause.Associations).Create(&room).Error
	})
	if err != nil {
		return nil, s.writeError("create room", err)
	}

	s.logger.Info("room %d (%s) created", room.ID, room.Number)
	return &room, nil
}

func (s *RoomService) Get(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrRoomNotFound)
	}
	return &room, nil
}

// Update overwrites the fields present in the input
func (s *RoomService) Update(ctx context.Context, id uint, in *dto.RoomInput) (*models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, id).Error; err != nil {
			return lookupError(err, apperrors.ErrRoomNotFound)
		}

		if in.Number != nil && *in.Number != room.Number {
			taken, err := roomNumberTaken(tx, *in.Number, room.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.Conflict(apperrors.ErrRoomNumberTaken)
			}
		}

		applyRoomInput(&room, in)
		return tx.Omit(clause.Associations).Save(&room).Error
	})
	if err != nil {
		return nil, s.writeError("update room", err)
	}
	return &room, nil
}

// Delete removes a room that no reservation references
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			return lookupError(err, apperrors.ErrRoomNotFound)
		}

		var bookings int64
		if err := tx.Model(&models.Reservation{}).Where("room_id = ?", room.ID).Count(&bookings).Error; err != nil {
			return err
		}
		if bookings > 0 {
			return apperrors.Conflict(apperrors.ErrRoomHasBookings)
		}
		return tx.Delete(&room).Error
	})
	if err != nil {
		if !apperrors.IsAppError(err) && isForeignKeyViolation(err) {
			return apperrors.Conflict(apperrors.ErrRoomHasBookings)
		}
		return s.writeError("delete room", err)
	}

	s.logger.Info("room %d deleted", id)
	return nil
}

// List returns rooms matching the filter in primary-key order
func (s *RoomService) List(ctx context.Context, filter dto.RoomFilter, q dto.ListQuery) (dto.Page[models.Room], error) {
	page := dto.Page[models.Room]{Page: q.Page, PerPage: q.PerPage}

	if err := s.db.WithContext(ctx).Model(&models.Room{}).Scopes(roomFilter(filter)).Count(&page.Total).Error; err != nil {
		return page, apperrors.Database(err)
	}

	rooms := make([]models.Room, 0, q.PerPage)
	err := s.db.WithContext(ctx).
		Scopes(roomFilter(filter), paginate(q)).
		Order("id").
		Find(&rooms).Error
	if err != nil {
		return page, apperrors.Database(err)
	}
	page.Items = rooms
	return page, nil
}

func (s *RoomService) writeError(op string, err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	if isUniqueViolation(err) {
		return apperrors.Conflict(apperrors.ErrRoomNumberTaken)
	}
	s.logger.Error("%s: %v", op, err)
	return apperrors.Database(err)
}

func roomFilter(filter dto.RoomFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Type != "" {
			db = db.Where("type = ?", filter.Type)
		}
		if filter.Available != nil {
			db = db.Where("available = ?", *filter.Available)
		}
		return db
	}
}

func roomNumberTaken(tx *gorm.DB, number string, exceptID uint) (bool, error) {
	var count int64
	query := tx.Model(&models.Room{}).Where("number = ?", number)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func applyRoomInput(room *models.Room, in *dto.RoomInput) {
	if in.Number != nil {
		room.Number = *in.Number
	}
	if in.Type != nil {
		room.Type = *in.Type
	}
	if in.NightlyPrice != nil {
		room.NightlyPrice = *in.NightlyPrice
	}
	if in.Capacity != nil {
		room.Capacity = *in.Capacity
	}
	if in.Available != nil {
		room.Available = *in.Available
	}
}
