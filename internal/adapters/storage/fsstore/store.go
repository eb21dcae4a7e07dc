// Package fsstore implements repository storage on the local filesystem.
package fsstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cenk/backoff"
	"go.trai.ch/gavel/internal/adapters/storage/checksum"
	"go.trai.ch/gavel/internal/core/domain"
	"go.trai.ch/gavel/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644

	defaultMaxRetries = 3
)

var _ ports.Storage = (*Store)(nil)

// Store keeps repository files below a root directory.
// Writes go to a temporary file that is renamed into place, so readers
// observe either the old or the new content.
type Store struct {
	name       string
	root       string
	maxRetries uint64
}

// Option configures a Store.
type Option func(*Store)

// WithMaxRetries sets how often a failed write is retried. Zero disables retries.
func WithMaxRetries(n uint64) Option {
	return func(s *Store) {
		s.maxRetries = n
	}
}

// New creates a Store for the repository name rooted at root.
func New(name, root string, opts ...Option) (*Store, error) {
	s := &Store{
		name:       name,
		root:       filepath.Clean(root),
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(s.root, dirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStorageFault, err.Error()), "root", s.root)
	}
	return s, nil
}

// Name returns the repository name.
func (s *Store) Name() string {
	return s.name
}

// Root returns the directory holding the repository files.
func (s *Store) Root() string {
	return s.root
}

// Get reads the file at loc.
func (s *Store) Get(_ context.Context, loc domain.Location) ([]byte, error) {
	path, err := s.path(loc)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // Path is built from validated location segments
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "file does not exist"), "location", loc.String())
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStorageFault, err.Error()), "location", loc.String())
	}
	return data, nil
}

// Put writes data to loc, creating parent directories as needed.
func (s *Store) Put(ctx context.Context, loc domain.Location, data []byte) error {
	path, err := s.path(loc)
	if err != nil {
		return err
	}
	return s.write(ctx, loc, path, data)
}

// WriteChecksums writes one sidecar file per checksum next to loc.
func (s *Store) WriteChecksums(ctx context.Context, loc domain.Location, data []byte) error {
	if loc.IsRoot() {
		return zerr.Wrap(domain.ErrInvalidLocation, "checksums need a file location")
	}

	dir := loc.Parent()
	for _, sc := range checksum.Compute(data) {
		target := dir.Resolve(sc.FileName(loc.Name()))
		path, err := s.path(target)
		if err != nil {
			return err
		}
		if err := s.write(ctx, target, path, []byte(sc.Value)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) path(loc domain.Location) (string, error) {
	if loc.IsRoot() {
		return "", zerr.Wrap(domain.ErrInvalidLocation, "location names the repository root")
	}
	return filepath.Join(append([]string{s.root}, loc.Segments()...)...), nil
}

func (s *Store) write(ctx context.Context, loc domain.Location, path string, data []byte) error {
	// WithMaxRetries treats zero as unlimited.
	var policy backoff.BackOff = &backoff.StopBackOff{}
	if s.maxRetries > 0 {
		policy = backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.maxRetries)
	}

	err := backoff.Retry(func() error {
		return writeAtomic(path, data)
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStorageFault, err.Error()), "location", loc.String())
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
