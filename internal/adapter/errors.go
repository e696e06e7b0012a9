package adapter

import "errors"

// Sentinel errors mapped from the remote service's HTTP status codes.
// Callers match them with errors.Is; none of them is ever classified as a
// network failure, so they are never queued for replay.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
