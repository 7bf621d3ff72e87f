package registry

import "errors"

var (
	// ErrNotFound indicates no record or chat engine exists for a name.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
