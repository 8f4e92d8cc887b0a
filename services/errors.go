package services

import (
	"errors"
	"fmt"
)

// Typed failures returned by the services. The HTTP status each one maps
// to is a handler concern.
var (
	// ErrInvalidCredentials rejects a login with an unknown username or
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken rejects a malformed, tampered or expired token, or
	// one whose subject no longer resolves to a user.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden rejects a non-superuser acting on another doctor's scope.
	ErrForbidden = errors.New("access to another doctor's records is forbidden")

	// ErrDoctorNotFound rejects a non-superuser with no associated doctor.
	ErrDoctorNotFound = errors.New("no doctor associated with this user")

	// ErrScopeRequired rejects a superuser request that names no doctor
	// and has none associated.
	ErrScopeRequired = errors.New("doctor_id required when superuser has no associated doctor")

	// ErrMissingFields rejects a superuser procedure registration that
	// omits doctor_id or patient_id.
	ErrMissingFields = errors.New("doctor_id and patient_id are required")
)

// ValidationError reports a semantically invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
