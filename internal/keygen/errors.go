package keygen

import "errors"

var (
	// ErrInvalidRequest is returned when a request fails struct validation.
	ErrInvalidRequest = errors.New("invalid generate request")

	// ErrInvalidCount is returned when a batch asks for fewer than one key.
	ErrInvalidCount = errors.New("count must be at least 1")
)
