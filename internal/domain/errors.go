package domain

import "errors"

// Sentinel errors shared across services. Controllers map these to HTTP
// status codes; services wrap them with fmt.Errorf("...: %w", err) so the
// original context survives errors.Is checks.
var (
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a referenced speaker or nomination id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrReadFailed is returned when the backing store cannot be read or parsed.
	ErrReadFailed = errors.New("store read failed")

	// ErrWriteFailed is returned when the backing store cannot be written.
	ErrWriteFailed = errors.New("store write failed")

	// ErrGateway is returned when the text-generation upstream fails or
	// returns no usable content.
	ErrGateway = errors.New("text generation failed")

	// ErrUnauthorized is returned on failed admin credential or token checks.
	ErrUnauthorized = errors.New("unauthorized")
)
