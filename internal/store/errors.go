package store

import "errors"

var (
	// ErrOperationNotFound is returned when a queued operation id does not
	// exist in the store.
	ErrOperationNotFound = errors.New("queued operation not found")

	// ErrCacheMiss is returned when no cached entry exists for the
	// requested key. Callers treat it as "never loaded", not as a failure.
	ErrCacheMiss = errors.New("cache entry not found")
)
