package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/pdfsync/internal/models"
	"github.com/iudanet/pdfsync/internal/server/storage"
)

var _ storage.PDFStorage = (*Storage)(nil)

// CreatePDF stores a new document
func (s *Storage) CreatePDF(ctx context.Context, pdf *models.PDF) error {
	query := `
		INSERT INTO pdfs (id, name, content, digest, number_of_pages, current_page, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		pdf.ID,
		pdf.Name,
		pdf.Content,
		pdf.Digest,
		pdf.NumberOfPages,
		pdf.CurrentPage,
		pdf.CreatedAt,
		pdf.UpdatedAt,
	)
	if err != nil {
		// Проверяем на duplicate id
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrPDFAlreadyExists
		}
		return fmt.Errorf("failed to insert pdf: %w", err)
	}

	return nil
}

// GetPDF retrieves a document with its content
func (s *Storage) GetPDF(ctx context.Context, id string) (*models.PDF, error) {
	query := `
		SELECT id, name, content, digest, number_of_pages, current_page, created_at, updated_at
		FROM pdfs
		WHERE id = ?
	`

	pdf := &models.PDF{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&pdf.ID,
		&pdf.Name,
		&pdf.Content,
		&pdf.Digest,
		&pdf.NumberOfPages,
		&pdf.CurrentPage,
		&pdf.CreatedAt,
		&pdf.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPDFNotFound
		}
		return nil, fmt.Errorf("failed to get pdf: %w", err)
	}

	return pdf, nil
}

// UpdateCurrentPage stores the reader position
func (s *Storage) UpdateCurrentPage(ctx context.Context, id string, page int, updatedAt time.Time) error {
	query := `UPDATE pdfs SET current_page = ?, updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, page, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update current page: %w", err)
	}

	return expectRow(result)
}

// UpdateContent replaces the document bytes
func (s *Storage) UpdateContent(ctx context.Context, id string, content []byte, digest string, numberOfPages int, updatedAt time.Time) error {
	query := `
		UPDATE pdfs
		SET content = ?, digest = ?, number_of_pages = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query, content, digest, numberOfPages, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update pdf content: %w", err)
	}

	return expectRow(result)
}

// expectRow возвращает ErrPDFNotFound, если запрос не затронул ни одной строки
func expectRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return storage.ErrPDFNotFound
	}
	return nil
}
