package models

import "time"

// Event is a calendar entry owned by exactly one user. Events are created
// and deleted but never updated; there is no edit operation.
type Event struct {
	// ID is the server-assigned unique identifier of the event.
	ID int64 `json:"id"`

	// Start and End bound the event in time. The invariant Start <= End is
	// checked at creation and backed by a schema-level constraint.
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	// Name is a required short label.
	Name string `json:"name"`

	// Notes is optional free text. It is stored but intentionally excluded
	// from query responses.
	Notes string `json:"notes,omitempty"`

	// UserID identifies the owning user.
	UserID int64 `json:"user_id"`

	// CreatedAt is the timestamp when the event row was inserted.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Event model.
func (e Event) TableName() string {
	return "events"
}

// EventFilter narrows an event query. Nil/empty fields are ignored.
// Start keeps events starting at or after it, End keeps events ending at or
// before it, Search keeps events whose name or notes contain the substring
// case-insensitively.
type EventFilter struct {
	Start  *time.Time
	End    *time.Time
	Search string
}
