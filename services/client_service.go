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

type ClientService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewClientService(opts ServiceOptions) *ClientService {
	opts = opts.withDefaults()
	return &ClientService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// Create stores a new client; the email must not be in use
func (s *ClientService) Create(ctx context.Context, in *dto.ClientInput) (*models.Client, error) {
	client := models.Client{
		Name:    deref(in.Name),
		Surname: deref(in.Surname),
		Email:   deref(in.Email),
		Phone:   in.Phone,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := emailTaken(tx, client.Email, 0)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.Conflict(apperrors.ErrEmailTaken)
		}
		return tx.Omit(clause.Associations).Create(&client).Error
	})
	if err != nil {
		return nil, s.writeError("create client", err)
	}

	s.logger.Info("client %d created", client.ID)
	return &client, nil
}

// Get loads a client together with its reservations and their rooms
func (s *ClientService) Get(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).Scopes(withReservations).First(&client, id).Error; err != nil {
		return nil, lookupError(err, apperrors.ErrClientNotFound)
	}
	return &client, nil
}

// Update overwrites the fields present in the input
func (s *ClientService) Update(ctx context.Context, id uint, in *dto.ClientInput) (*models.Client, error) {
	var client models.Client
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&client, id).Error; err != nil {
			return lookupError(err, apperrors.ErrClientNotFound)
		}

		if in.Email != nil && *in.Email != client.Email {
			taken, err := emailTaken(tx, *in.Email, client.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.Conflict(apperrors.ErrEmailTaken)
			}
		}

		applyClientInput(&client, in)
		return tx.Omit(clause.Associations).Save(&client).Error
	})
	if err != nil {
		return nil, s.writeError("update client", err)
	}
	return s.Get(ctx, id)
}

// Delete removes the client and its reservations
func (s *ClientService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, id).Error; err != nil {
			return lookupError(err, apperrors.ErrClientNotFound)
		}
		if err := tx.Where("client_id = ?", client.ID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})
	if err != nil {
		return s.writeError("delete client", err)
	}

	s.logger.Info("client %d deleted", id)
	return nil
}

// List returns clients in primary-key order
func (s *ClientService) List(ctx context.Context, q dto.ListQuery) (dto.Page[models.Client], error) {
	page := dto.Page[models.Client]{Page: q.Page, PerPage: q.PerPage}

	if err := s.db.WithContext(ctx).Model(&models.Client{}).Count(&page.Total).Error; err != nil {
		return page, apperrors.Database(err)
	}

	clients := make([]models.Client, 0, q.PerPage)
	if err := s.db.WithContext(ctx).Order("id").Scopes(paginate(q), withReservations).Find(&clients).Error; err != nil {
		return page, apperrors.Database(err)
	}
	page.Items = clients
	return page, nil
}

func (s *ClientService) writeError(op string, err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	if isUniqueViolation(err) {
		return apperrors.Conflict(apperrors.ErrEmailTaken)
	}
	s.logger.Error("%s: %v", op, err)
	return apperrors.Database(err)
}

func withReservations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Reservations", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Preload("Reservations.Room")
}

func emailTaken(tx *gorm.DB, email string, exceptID uint) (bool, error) {
	var count int64
	query := tx.Model(&models.Client{}).Where("email = ?", email)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func applyClientInput(client *models.Client, in *dto.ClientInput) {
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Surname != nil {
		client.Surname = *in.Surname
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = in.Phone
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
