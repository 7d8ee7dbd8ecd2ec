package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrNoZone means the order point matched no zone, either because no active zone has
// a center or because the order coordinates are missing or malformed.
var ErrNoZone = errors.New("no zone found")

// ErrNoDriver means a zone was matched but none of its drivers is eligible.
var ErrNoDriver = errors.New("no available driver")

// IsUnassigned reports whether err is one of the recoverable "order stays unassigned" outcomes.
func IsUnassigned(err error) bool {
	return errors.Is(err, ErrNoZone) || errors.Is(err, ErrNoDriver)
}
