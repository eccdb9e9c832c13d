package storage

import "errors"

// Common client storage errors
var (
	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrBucketNotFound indicates that the signatures bucket is missing
	ErrBucketNotFound = errors.New("signatures bucket not found")
)
