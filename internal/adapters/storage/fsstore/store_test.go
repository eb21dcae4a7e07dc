package fsstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gavel/internal/adapters/storage/fsstore"
	"go.trai.ch/gavel/internal/core/domain"
)

func newStore(t *testing.T) *fsstore.Store {
	t.Helper()
	store, err := fsstore.New("releases", t.TempDir(), fsstore.WithMaxRetries(0))
	require.NoError(t, err)
	return store
}

func TestStore_PutAndGet(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	loc := domain.MustParseLocation("com/example/lib/maven-metadata.xml")

	require.NoError(t, store.Put(ctx, loc, []byte("<metadata/>")))

	got, err := store.Get(ctx, loc)
	require.NoError(t, err)
	assert.Equal(t, "<metadata/>", string(got))
	assert.Equal(t, "releases", store.Name())

	onDisk, err := os.ReadFile(filepath.Join(store.Root(), "com", "example", "lib", "maven-metadata.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<metadata/>", string(onDisk))
}

func TestStore_PutReplaces(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	loc := domain.MustParseLocation("a/b.txt")

	require.NoError(t, store.Put(ctx, loc, []byte("first")))
	require.NoError(t, store.Put(ctx, loc, []byte("second")))

	got, err := store.Get(ctx, loc)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(filepath.Join(store.Root(), "a"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_GetMissing(t *testing.T) {
	store := newStore(t)

	_, err := store.Get(context.Background(), domain.MustParseLocation("com/example/maven-metadata.xml"))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_RootLocation(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, domain.Location{})
	require.ErrorIs(t, err, domain.ErrInvalidLocation)

	err = store.Put(ctx, domain.Location{}, []byte("x"))
	require.ErrorIs(t, err, domain.ErrInvalidLocation)
}

func TestStore_PutFault(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, domain.MustParseLocation("blocker"), []byte("file")))

	err := store.Put(ctx, domain.MustParseLocation("blocker/child.txt"), []byte("x"))
	require.ErrorIs(t, err, domain.ErrStorageFault)
}

func TestStore_WriteChecksums(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	loc := domain.MustParseLocation("com/example/lib/maven-metadata.xml")

	require.NoError(t, store.WriteChecksums(ctx, loc, []byte("hello")))

	sha1, err := store.Get(ctx, domain.MustParseLocation("com/example/lib/maven-metadata.xml.sha1"))
	require.NoError(t, err)
	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", string(sha1))

	for _, ext := range []string{"md5", "sha256", "sha512"} {
		_, err := os.Stat(filepath.Join(store.Root(), "com", "example", "lib", "maven-metadata.xml."+ext))
		assert.NoError(t, err, ext)
	}
}

func TestNew_RootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := fsstore.New("releases", file)
	require.ErrorIs(t, err, domain.ErrStorageFault)
}
