package storage

import (
	"context"
	"time"

	"github.com/iudanet/pdfsync/internal/models"
)

// PDFStorage defines interface for document persistence
type PDFStorage interface {
	// CreatePDF stores a new document with its content
	// Returns ErrPDFAlreadyExists if the id is taken
	CreatePDF(ctx context.Context, pdf *models.PDF) error

	// GetPDF retrieves a document with its content by ID
	// Returns ErrPDFNotFound if document doesn't exist
	GetPDF(ctx context.Context, id string) (*models.PDF, error)

	// UpdateCurrentPage stores the page the reader is on
	// Returns ErrPDFNotFound if document doesn't exist
	UpdateCurrentPage(ctx context.Context, id string, page int, updatedAt time.Time) error

	// UpdateContent replaces the document bytes after an annotation save
	// Returns ErrPDFNotFound if document doesn't exist
	UpdateContent(ctx context.Context, id string, content []byte, digest string, numberOfPages int, updatedAt time.Time) error
}
