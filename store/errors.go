package store

import "errors"

var (
	// ErrNotFound means a query matched no tracked directory.
	ErrNotFound = errors.New("no matching entry")
	// ErrInvalidPath means an insert target does not exist or is not a
	// directory.
	ErrInvalidPath = errors.New("path does not exist or is not a directory")
)
