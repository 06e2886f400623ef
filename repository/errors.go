package repository

import "errors"

var (
	// ErrNotFound means no document matched the identifier.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate means an insert or update hit a unique index.
	ErrDuplicate = errors.New("duplicate key")
)
