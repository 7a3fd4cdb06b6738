package services

import (
	"errors"
	"fmt"
)

// Failure taxonomy shared by all services. Controllers translate these into
// HTTP statuses; anything not matched is treated as a persistence failure and
// reported with a generic message.
var (
	ErrNotFound           = errors.New("not_found")
	ErrRoomUnavailable    = errors.New("room_unavailable")
	ErrConflict           = errors.New("booking_conflict")
	ErrRoomReferenced     = errors.New("room_referenced")
	ErrUserReferenced     = errors.New("user_referenced")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountLocked      = errors.New("account_locked")
	ErrSessionExpired     = errors.New("session_expired")
	ErrForbidden          = errors.New("forbidden")
)

// ValidationError carries a user-facing message for malformed input or an
// illegal state transition.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
