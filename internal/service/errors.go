package service

import "errors"

var (
	// ErrNotAuthenticated is returned when an operation requires a logged
	// in principal and none is set.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnknownCaseField is returned when a toggle targets a checklist
	// flag outside the closed field set.
	ErrUnknownCaseField = errors.New("unknown case field")

	// ErrMalformedOperation is returned when a queued operation's payload
	// is missing the fields its variant requires.
	ErrMalformedOperation = errors.New("malformed queued operation")
)
