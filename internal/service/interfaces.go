package service

import (
	"context"

	"github.com/calkeep/go-cal-keeper/models"
)

// AuthService covers user registration and the per-request authentication
// check. There are no sessions or tokens: every operation re-sends the
// credential pair and resolves it to a user from scratch.
type AuthService interface {
	// RegisterUser hashes the password and persists a new user account.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)

	// Authenticate resolves (email, password) to a stored user or fails.
	Authenticate(ctx context.Context, creds models.Credentials) (models.User, error)
}

// EventService implements the calendar operations. Every method
// authenticates the caller first and scopes all data access to the
// authenticated user.
type EventService interface {
	// CreateEvent validates start <= end and persists a new event owned by
	// the caller.
	CreateEvent(ctx context.Context, creds models.Credentials, event models.Event) (models.Event, error)

	// DeleteEvent removes the caller's event. Events that do not exist and
	// events owned by someone else fail identically with
	// store.ErrEventNotFound.
	DeleteEvent(ctx context.Context, creds models.Credentials, eventID int64) error

	// QueryEvents returns the caller's events matching the filter, in
	// insertion order.
	QueryEvents(ctx context.Context, creds models.Credentials, filter models.EventFilter) ([]models.Event, error)
}
