package tokenstore

import "errors"

var (
	// ErrNotFound is returned when a key does not exist or has expired.
	ErrNotFound = errors.New("tokenstore: token not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("tokenstore: closed")
)
