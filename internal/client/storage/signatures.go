package storage

import (
	"context"

	"github.com/iudanet/pdfsync/internal/models"
)

// Keys of the two cache slots, the same ones pdf.js uses in browser localStorage
const (
	KeyPreviousSignatures = "previous_pdfjs.signature"
	KeyCurrentSignatures  = "pdfjs.signature"
)

//go:generate moq -out signatures_mock.go . SignatureCache

// SignatureCache defines the durable two-slot cache of signature snapshots
type SignatureCache interface {
	// LoadSignatures reads both slots. A missing slot is returned as absent,
	// a miss is never an error.
	LoadSignatures(ctx context.Context) (models.SignatureCacheEntry, error)

	// StoreSignatures overwrites both slots. An absent snapshot removes its key.
	StoreSignatures(ctx context.Context, entry models.SignatureCacheEntry) error

	// StoreCurrentSignatures overwrites only the current slot.
	// This is the write path of the viewer after annotation edits.
	StoreCurrentSignatures(ctx context.Context, snapshot models.SignatureSnapshot) error
}
