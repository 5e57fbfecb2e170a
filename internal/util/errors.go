package util

import "errors"

// Sentinel errors for common failure modes
var (
	// ErrStorageUnavailable indicates the database cannot be opened or created
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedSnapshot indicates an imported snapshot could not be
	// written or leaves the store unopenable
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrNotFound indicates a required resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidConfig indicates invalid configuration
	ErrInvalidConfig = errors.New("invalid configuration")
)
