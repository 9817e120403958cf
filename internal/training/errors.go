package training

import "errors"

var (
	// ErrMissingField is returned when a person or a completion has no name.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidDate is returned when a completion or expiration date does not
	// match MM/DD/YYYY.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidReferenceDate is returned when the reference date of the
	// expiration report does not match YYYY-MM-DD.
	ErrInvalidReferenceDate = errors.New("invalid reference date")
)
