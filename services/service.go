package services

import (
	"errors"
	"strings"

	"hotel-reservation-api/dto"
	apperrors "hotel-reservation-api/errors"
	"hotel-reservation-api/services/logger"
	"hotel-reservation-api/services/notification"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ServiceOptions carries the shared dependencies of every service
type ServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Notifier notification.Service
}

func (o ServiceOptions) withDefaults() ServiceOptions {
	if o.Logger == nil {
		o.Logger = logger.NewNopLogger()
	}
	if o.Notifier == nil {
		o.Notifier = notification.NopService{}
	}
	return o
}

// paginate limits a query to one page
func paginate(q dto.ListQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Offset()).Limit(q.PerPage)
	}
}

// PostgreSQL error codes
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqForeignKeyViolation
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// lookupError maps a missing row to the given not-found sentinel
func lookupError(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(notFound)
	}
	return apperrors.Database(err)
}

// passThrough keeps AppErrors raised inside a transaction and wraps the rest
func passThrough(err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.Database(err)
}
