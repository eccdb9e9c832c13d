package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/pdfsync/internal/client/storage"
	"github.com/iudanet/pdfsync/internal/models"
)

// createTestStorage создает временное BoltDB хранилище
func createTestStorage(t *testing.T) *Storage {
	dbPath := filepath.Join(t.TempDir(), "signatures_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestLoadSignatures_Empty(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	entry, err := store.LoadSignatures(ctx)
	require.NoError(t, err)
	assert.False(t, entry.Previous.Present)
	assert.False(t, entry.Current.Present)
	assert.False(t, entry.Diverged())
}

func TestStoreAndLoadSignatures(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	want := models.SignatureCacheEntry{
		Previous: models.NewSignatureSnapshot(`{"sig-1":{"page":1}}`),
		Current:  models.NewSignatureSnapshot(`{"sig-1":{"page":1},"sig-2":{"page":3}}`),
	}

	require.NoError(t, store.StoreSignatures(ctx, want))

	got, err := store.LoadSignatures(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStoreSignatures_Overwrites(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	first := models.SignatureCacheEntry{
		Previous: models.NewSignatureSnapshot(`{"a":1}`),
		Current:  models.NewSignatureSnapshot(`{"b":2}`),
	}
	require.NoError(t, store.StoreSignatures(ctx, first))

	remote := models.NewSignatureSnapshot(`{"c":3}`)
	second := models.SignatureCacheEntry{Previous: remote, Current: remote}
	require.NoError(t, store.StoreSignatures(ctx, second))

	got, err := store.LoadSignatures(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestStoreSignatures_AbsentSlotDeletesKey(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.StoreSignatures(ctx, models.SignatureCacheEntry{
		Previous: models.NewSignatureSnapshot(`{}`),
		Current:  models.NewSignatureSnapshot(`{}`),
	}))
	require.NoError(t, store.StoreSignatures(ctx, models.SignatureCacheEntry{
		Current: models.NewSignatureSnapshot(`{}`),
	}))

	got, err := store.LoadSignatures(ctx)
	require.NoError(t, err)
	assert.False(t, got.Previous.Present)
	assert.True(t, got.Current.Present)

	err = store.db.View(func(tx *bbolt.Tx) error {
		assert.Nil(t, tx.Bucket(bucketSignatures).Get([]byte(storage.KeyPreviousSignatures)))
		return nil
	})
	require.NoError(t, err)
}

func TestStoreCurrentSignatures_KeepsPrevious(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	previous := models.NewSignatureSnapshot(`{"a":1}`)
	require.NoError(t, store.StoreSignatures(ctx, models.SignatureCacheEntry{Previous: previous, Current: previous}))

	edited := models.NewSignatureSnapshot(`{"a":1,"b":2}`)
	require.NoError(t, store.StoreCurrentSignatures(ctx, edited))

	got, err := store.LoadSignatures(ctx)
	require.NoError(t, err)
	assert.Equal(t, previous, got.Previous)
	assert.Equal(t, edited, got.Current)
	assert.True(t, got.Diverged())
}

func TestLoadSignatures_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketSignatures)
	})
	require.NoError(t, err)

	// Отсутствие bucket это промах, а не ошибка
	entry, err := store.LoadSignatures(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SignatureCacheEntry{}, entry)

	// Запись пересоздает bucket
	require.NoError(t, store.StoreCurrentSignatures(ctx, models.NewSignatureSnapshot(`{}`)))
	entry, err = store.LoadSignatures(ctx)
	require.NoError(t, err)
	assert.True(t, entry.Current.Present)
}

func TestSignatures_Closed(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.LoadSignatures(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.StoreSignatures(ctx, models.SignatureCacheEntry{})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.StoreCurrentSignatures(ctx, models.SignatureSnapshot{})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestSignatures_PersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	snapshot := models.NewSignatureSnapshot(`{"persisted":true}`)
	require.NoError(t, store.StoreSignatures(ctx, models.SignatureCacheEntry{Previous: snapshot, Current: snapshot}))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.LoadSignatures(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got.Previous)
	assert.Equal(t, snapshot, got.Current)
}

var _ storage.SignatureCache = (*Storage)(nil)
