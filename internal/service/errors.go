package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required request fields are
	// empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the supplied password does not
	// verify against the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidTimeRange is returned when an event's start is after its
	// end.
	ErrInvalidTimeRange = errors.New("invalid start and end times")
)
