package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode identifies a class of failure; response.Error maps it to an HTTP status.
type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"
	ErrCodeDomainRule ErrorCode = "DOMAIN_RULE"
	ErrCodeDBError    ErrorCode = "DB_ERROR"
)

// AppError is the error type every service returns to the HTTP layer.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
	// Fields holds field -> message pairs for validation failures.
	Fields map[string]string
}

func (e *AppError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, formatFields(e.Fields))
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError wraps a field -> message map.
func NewValidationError(fields map[string]string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: "Invalid payload",
		Err:     ErrInvalidInput,
		Fields:  fields,
	}
}

// NotFound wraps a not-found sentinel such as ErrClientNotFound.
func NotFound(sentinel error) *AppError {
	return NewAppError(ErrCodeNotFound, capitalize(sentinel.Error()), sentinel)
}

// Conflict wraps a uniqueness or dependency sentinel such as ErrEmailTaken.
func Conflict(sentinel error) *AppError {
	return NewAppError(ErrCodeConflict, capitalize(sentinel.Error()), sentinel)
}

// DomainRule wraps a business rule violation such as ErrRoomNotAvailable.
func DomainRule(sentinel error) *AppError {
	return NewAppError(ErrCodeDomainRule, capitalize(sentinel.Error()), sentinel)
}

// Database wraps an unexpected storage failure.
func Database(err error) *AppError {
	return NewAppError(ErrCodeDBError, "Internal server error", err)
}

// IsAppError reports whether err is or wraps an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError returns the AppError in err's chain, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Client errors
	ErrClientNotFound = errors.New("client not found")
	ErrEmailTaken     = errors.New("a client with this email already exists")

	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room unavailable")
	ErrRoomNumberTaken  = errors.New("a room with this number already exists")
	ErrRoomHasBookings  = errors.New("room is still referenced by reservations")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}
