package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/pdfsync/internal/client/storage"
	"github.com/iudanet/pdfsync/internal/models"
)

// LoadSignatures reads the previous and current slots.
// Missing keys come back as absent snapshots.
func (s *Storage) LoadSignatures(ctx context.Context) (models.SignatureCacheEntry, error) {
	var entry models.SignatureCacheEntry
	if s.db == nil {
		return entry, storage.ErrStorageClosed
	}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSignatures)
		if bucket == nil {
			// Пустой кэш: оба слота отсутствуют
			return nil
		}

		entry.Previous = readSnapshot(bucket, storage.KeyPreviousSignatures)
		entry.Current = readSnapshot(bucket, storage.KeyCurrentSignatures)
		return nil
	})
	if err != nil {
		return models.SignatureCacheEntry{}, fmt.Errorf("failed to load signatures: %w", err)
	}

	return entry, nil
}

// StoreSignatures overwrites both slots in one transaction
func (s *Storage) StoreSignatures(ctx context.Context, entry models.SignatureCacheEntry) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketSignatures)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		if err := writeSnapshot(bucket, storage.KeyPreviousSignatures, entry.Previous); err != nil {
			return err
		}
		return writeSnapshot(bucket, storage.KeyCurrentSignatures, entry.Current)
	})
	if err != nil {
		return fmt.Errorf("failed to store signatures: %w", err)
	}

	return nil
}

// StoreCurrentSignatures overwrites only the current slot
func (s *Storage) StoreCurrentSignatures(ctx context.Context, snapshot models.SignatureSnapshot) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketSignatures)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		return writeSnapshot(bucket, storage.KeyCurrentSignatures, snapshot)
	})
	if err != nil {
		return fmt.Errorf("failed to store current signatures: %w", err)
	}

	return nil
}

func readSnapshot(bucket *bbolt.Bucket, key string) models.SignatureSnapshot {
	data := bucket.Get([]byte(key))
	if data == nil {
		return models.SignatureSnapshot{}
	}
	// bbolt отдаёт срез, валидный только внутри транзакции: string() копирует
	return models.NewSignatureSnapshot(string(data))
}

func writeSnapshot(bucket *bbolt.Bucket, key string, snapshot models.SignatureSnapshot) error {
	if !snapshot.Present {
		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
		return nil
	}
	if err := bucket.Put([]byte(key), []byte(snapshot.Data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
