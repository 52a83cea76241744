package adapter

import "errors"

var (
	ErrBadRequest        = errors.New("bad request")
	ErrUserNotFound      = errors.New("user does not exist")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidTimeRange  = errors.New("invalid start and end times")
	ErrEventNotFound     = errors.New("event not found")
	ErrServerFailure     = errors.New("server failure")
)
