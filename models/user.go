package models

import "time"

// User represents an account entity used for authentication and event
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the natural lookup key used during authentication.
	// Uniqueness is enforced by the database schema.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password
	// (salt embedded). This value MUST never hold the plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the (email, plaintext password) pair re-sent with every
// request. There is no session or token mechanism: each call authenticates
// from scratch.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
