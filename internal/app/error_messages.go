// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-cal-keeper Authors

// Package app contains shared application-layer constants used across the
// go-cal-keeper server handlers and the client adapter.
//
// All Msg* constants are the exact message strings written into HTTP response
// bodies to describe the outcome of an operation. The client adapter matches
// on these same strings to map responses back to sentinel errors, so server
// and client stay in lockstep by construction.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a decoded request fails
	// validation (e.g. missing required fields, malformed email).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUserNotFound is returned when the email in the supplied credential
	// pair does not match any account.
	MsgUserNotFound = "User does not exist"

	// MsgIncorrectPassword is returned when the account exists but the
	// supplied password does not verify against the stored hash.
	MsgIncorrectPassword = "Incorrect password"

	// MsgUserAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgUserAlreadyExists = "User already exists"

	// MsgInvalidTimeRange is returned when an event's start is after its
	// end.
	MsgInvalidTimeRange = "Invalid start and end times"

	// MsgEventNotFound is returned when a deletion targets an event that
	// does not exist or belongs to a different account. The two cases are
	// indistinguishable on the wire.
	MsgEventNotFound = "Event not found"
)
