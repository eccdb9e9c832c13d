package storage

import "errors"

// Common storage errors
var (
	// ErrPDFNotFound indicates that the document was not found in storage
	ErrPDFNotFound = errors.New("pdf not found")

	// ErrPDFAlreadyExists indicates that a document with this id already exists
	ErrPDFAlreadyExists = errors.New("pdf already exists")
)
