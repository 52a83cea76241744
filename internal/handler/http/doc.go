// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-cal-keeper Authors

// Package http contains the HTTP handler of the calendar server: route
// registration, request decoding and validation, middleware (trace id,
// logging, metrics, gzip) and the mapping of service errors to wire
// responses.
//
// The protocol is deliberately plain: credentials travel in every request
// body, successful mutations answer with the JSON string "Success" and every
// client-caused failure answers 400 with a short reason in the body.
package http
