package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/pdfsync/internal/server/storage"
)

var _ storage.SignatureStorage = (*Storage)(nil)

// GetSignatures returns the stored signatures object
func (s *Storage) GetSignatures(ctx context.Context) (string, error) {
	var signatures string
	err := s.db.QueryRowContext(ctx, `SELECT signatures FROM profile_signatures WHERE id = 1`).Scan(&signatures)
	if err != nil {
		return "", fmt.Errorf("failed to get signatures: %w", err)
	}
	return signatures, nil
}

// UpdateSignatures runs read-merge-write in one transaction
func (s *Storage) UpdateSignatures(ctx context.Context, merge storage.MergeFunc) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // Rollback после Commit возвращает ErrTxDone, игнорируем
	}()

	var stored string
	if err := tx.QueryRowContext(ctx, `SELECT signatures FROM profile_signatures WHERE id = 1`).Scan(&stored); err != nil {
		return "", fmt.Errorf("failed to read signatures: %w", err)
	}

	merged, err := merge(stored)
	if err != nil {
		return "", err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE profile_signatures SET signatures = ?, updated_at = ? WHERE id = 1`,
		merged, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to write signatures: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit signatures: %w", err)
	}

	return merged, nil
}
