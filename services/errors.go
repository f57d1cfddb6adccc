package services

import "errors"

// Sentinel errors the handlers translate into HTTP status codes.
var (
	// ErrValidation marks a rejected payload; the wrapped message names the
	// offending field.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a lookup for a report that was never ingested.
	ErrNotFound = errors.New("report not found")

	// ErrStoreUnavailable marks a store call that failed or timed out; safe
	// for the caller to retry with backoff.
	ErrStoreUnavailable = errors.New("store unavailable")
)
