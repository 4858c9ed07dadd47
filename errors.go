package textkit

import "errors"

// Sentinel errors classifying every failure the library can surface. Callers
// match them with errors.Is; wrapped messages carry the operation detail.
var (
	// ErrInvalidInput marks an input that is not a usable text source,
	// such as a zero-value Source.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFileAccess marks a file source that cannot be opened or read.
	ErrFileAccess = errors.New("file access")

	// ErrInvalidParameter marks an operation parameter rejected before any
	// input is processed, such as a non-positive co-occurrence window.
	ErrInvalidParameter = errors.New("invalid parameter")
)
