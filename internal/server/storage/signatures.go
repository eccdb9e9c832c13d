package storage

import "context"

// MergeFunc computes the new signature state from the stored one
type MergeFunc func(stored string) (string, error)

// SignatureStorage defines interface for the profile signature state
type SignatureStorage interface {
	// GetSignatures returns the stored JSON object of signatures
	GetSignatures(ctx context.Context) (string, error)

	// UpdateSignatures reads the stored state, applies merge and writes the
	// result in one transaction. Returns the state that was written.
	UpdateSignatures(ctx context.Context, merge MergeFunc) (string, error)
}
