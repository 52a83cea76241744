package store

import (
	"context"

	"github.com/calkeep/go-cal-keeper/models"
)

//go:generate mockgen -destination=../mock/store_mocks.go -package=mock github.com/calkeep/go-cal-keeper/internal/store UserRepository,EventRepository

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by email (first match by lowest id).
	// Returns ErrUserNotFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// EventRepository is the data-access contract for calendar events.
type EventRepository interface {
	// CreateEvent persists a new event and returns it with server-assigned
	// fields populated.
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)

	// FindEventByID loads a single event. Returns ErrEventNotFound when no
	// row matches.
	FindEventByID(ctx context.Context, eventID int64) (models.Event, error)

	// DeleteEvent removes an event row. Returns ErrEventNotFound when
	// nothing was deleted.
	DeleteEvent(ctx context.Context, eventID int64) error

	// FindEvents returns the owner's events matching the filter, ordered by
	// insertion (ascending id).
	FindEvents(ctx context.Context, userID int64, filter models.EventFilter) ([]models.Event, error)
}

// ErrorClassifier abstracts driver-specific error inspection so repositories
// stay engine-agnostic.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err is a unique-constraint violation.
	IsUniqueViolation(err error) bool
}
