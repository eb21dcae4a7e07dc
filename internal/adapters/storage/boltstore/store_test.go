package boltstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gavel/internal/adapters/storage/boltstore"
	"go.trai.ch/gavel/internal/core/domain"
)

func openStore(t *testing.T, path string) *boltstore.Store {
	t.Helper()
	store, err := boltstore.Open("snapshots", path)
	require.NoError(t, err)
	return store
}

func TestStore_PutAndGet(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "repo.db"))
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	loc := domain.MustParseLocation("com/example/lib/maven-metadata.xml")

	require.NoError(t, store.Put(ctx, loc, []byte("<metadata/>")))

	got, err := store.Get(ctx, loc)
	require.NoError(t, err)
	assert.Equal(t, "<metadata/>", string(got))
	assert.Equal(t, "snapshots", store.Name())
}

func TestStore_GetMissing(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "repo.db"))
	t.Cleanup(func() { _ = store.Close() })

	_, err := store.Get(context.Background(), domain.MustParseLocation("missing/maven-metadata.xml"))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "repo.db")
	ctx := context.Background()
	loc := domain.MustParseLocation("a/b")

	first := openStore(t, path)
	require.NoError(t, first.Put(ctx, loc, []byte("kept")))
	require.NoError(t, first.Close())

	second := openStore(t, path)
	t.Cleanup(func() { _ = second.Close() })

	got, err := second.Get(ctx, loc)
	require.NoError(t, err)
	assert.Equal(t, "kept", string(got))
}

func TestStore_WriteChecksums(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "repo.db"))
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	loc := domain.MustParseLocation("com/example/lib/maven-metadata.xml")
	require.NoError(t, store.WriteChecksums(ctx, loc, []byte("hello")))

	got, err := store.Get(ctx, domain.MustParseLocation("com/example/lib/maven-metadata.xml.md5"))
	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", string(got))

	err = store.WriteChecksums(ctx, domain.Location{}, []byte("hello"))
	require.ErrorIs(t, err, domain.ErrInvalidLocation)
}
