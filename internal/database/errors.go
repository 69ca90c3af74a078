package database

import "errors"

var (
	// ErrInvalidID means the identifier is not structurally valid. The
	// store is never consulted in this case.
	ErrInvalidID = errors.New("invalid id")

	// ErrNotFound means the identifier is well-formed but no record
	// matches it.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyRecovered means a recovery claim already exists for the
	// original item. Retrying the same claim will always fail again.
	ErrAlreadyRecovered = errors.New("item already recovered")
)
