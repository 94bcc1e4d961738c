package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist in the
	// loaded collection.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input. Callers surface
	// these inline (form-level message); they never cross the UI boundary.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthRequired indicates the action needs a signed-in identity
	// but none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrRemote indicates a non-success response or transport error from
	// the Trust Circle API.
	ErrRemote = errors.New("remote request failed")

	// ErrTimeout indicates the API did not respond within the client timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)
