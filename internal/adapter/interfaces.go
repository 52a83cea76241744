// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-cal-keeper Authors

// Package adapter provides the client-side helper for talking to the
// calendar server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the wire protocol. The shipped implementation ([NewHTTPServerAdapter])
// speaks the JSON/HTTP protocol over resty. There are no sessions: the
// adapter holds the credential pair it was constructed with and attaches it
// to every request body.
//
// Error values defined in errors.go are mapped from server responses by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/calkeep/go-cal-keeper/models"
)

// ServerAdapter defines transport-agnostic communication with the calendar
// server on behalf of a single account. Implementations are responsible for
// serialisation, credential attachment and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// Register creates the account for the adapter's credential pair.
	// Returns ErrUserAlreadyExists (wrapped) when the email is taken.
	Register(ctx context.Context) error

	// CreateEvent stores a new event owned by the adapter's account. Only
	// Name, Start, End and Notes of the event are sent; ownership is
	// assigned server-side.
	CreateEvent(ctx context.Context, event models.Event) error

	// DeleteEvent removes the account's event by id. Returns
	// ErrEventNotFound (wrapped) when the event does not exist or belongs
	// to another account.
	DeleteEvent(ctx context.Context, eventID int64) error

	// Events returns the account's events narrowed by the filter, in
	// insertion order.
	Events(ctx context.Context, filter models.EventFilter) ([]models.EventResponse, error)
}
