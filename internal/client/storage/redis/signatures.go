// Package redis keeps the signature cache in Redis, for clients that run
// without a writable local disk or share the cache between processes.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/iudanet/pdfsync/internal/client/storage"
	"github.com/iudanet/pdfsync/internal/models"
)

// DefaultPrefix is prepended to the slot keys
const DefaultPrefix = "pdfsync:"

// Storage is a Redis backed SignatureCache
type Storage struct {
	client *goredis.Client
	prefix string
}

// New connects to Redis at addr and checks the connection with PING
func New(ctx context.Context, addr, prefix string) (*Storage, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return NewWithClient(client, prefix), nil
}

// NewWithClient wraps an existing client
func NewWithClient(client *goredis.Client, prefix string) *Storage {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Storage{client: client, prefix: prefix}
}

// Close closes the underlying client
func (s *Storage) Close() error {
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

func (s *Storage) key(name string) string {
	return s.prefix + name
}

// LoadSignatures reads both slots with a single MGET
func (s *Storage) LoadSignatures(ctx context.Context) (models.SignatureCacheEntry, error) {
	var entry models.SignatureCacheEntry
	if s.client == nil {
		return entry, storage.ErrStorageClosed
	}

	values, err := s.client.MGet(ctx,
		s.key(storage.KeyPreviousSignatures),
		s.key(storage.KeyCurrentSignatures),
	).Result()
	if err != nil {
		if errors.Is(err, goredis.ErrClosed) {
			return entry, storage.ErrStorageClosed
		}
		return entry, fmt.Errorf("failed to load signatures: %w", err)
	}

	entry.Previous = toSnapshot(values[0])
	entry.Current = toSnapshot(values[1])
	return entry, nil
}

// StoreSignatures overwrites both slots atomically (MULTI/EXEC)
func (s *Storage) StoreSignatures(ctx context.Context, entry models.SignatureCacheEntry) error {
	if s.client == nil {
		return storage.ErrStorageClosed
	}

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		s.queueWrite(ctx, pipe, storage.KeyPreviousSignatures, entry.Previous)
		s.queueWrite(ctx, pipe, storage.KeyCurrentSignatures, entry.Current)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store signatures: %w", err)
	}
	return nil
}

// StoreCurrentSignatures overwrites only the current slot
func (s *Storage) StoreCurrentSignatures(ctx context.Context, snapshot models.SignatureSnapshot) error {
	if s.client == nil {
		return storage.ErrStorageClosed
	}

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		s.queueWrite(ctx, pipe, storage.KeyCurrentSignatures, snapshot)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store current signatures: %w", err)
	}
	return nil
}

func (s *Storage) queueWrite(ctx context.Context, pipe goredis.Pipeliner, name string, snapshot models.SignatureSnapshot) {
	if !snapshot.Present {
		pipe.Del(ctx, s.key(name))
		return
	}
	pipe.Set(ctx, s.key(name), snapshot.Data, 0)
}

func toSnapshot(value interface{}) models.SignatureSnapshot {
	data, ok := value.(string)
	if !ok {
		return models.SignatureSnapshot{}
	}
	return models.NewSignatureSnapshot(data)
}
