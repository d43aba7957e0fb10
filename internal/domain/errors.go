package domain

import "errors"

var (
	ErrNotAuthenticated    = errors.New("not logged in")
	ErrRemoteUnavailable   = errors.New("portal api unavailable")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrForeignTurn         = errors.New("turn belongs to another user")
	ErrPermissionDenied    = errors.New("operation not allowed for this role")
)

// ValidationError is a user-facing input problem. It is reported inline and
// never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
