// Package boltstore implements repository storage in a single bbolt database file.
package boltstore

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
	"go.trai.ch/gavel/internal/adapters/storage/checksum"
	"go.trai.ch/gavel/internal/core/domain"
	"go.trai.ch/gavel/internal/core/ports"
	"go.trai.ch/zerr"
)

var bucketFiles = []byte("files")

var _ ports.Storage = (*Store)(nil)

// Store keeps repository files as keys of one bucket, keyed by location.
type Store struct {
	name string
	db   *bbolt.DB
}

// Open opens or creates the database at path for the repository name.
func Open(name, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStorageFault, err.Error()), "path", path)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStorageFault, err.Error()), "path", path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFiles)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(domain.ErrStorageFault, err.Error()), "path", path)
	}

	return &Store{name: name, db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name returns the repository name.
func (s *Store) Name() string {
	return s.name
}

// Get returns a copy of the value stored at loc.
func (s *Store) Get(_ context.Context, loc domain.Location) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		val := tx.Bucket(bucketFiles).Get(key(loc))
		if val == nil {
			return zerr.With(zerr.Wrap(domain.ErrNotFound, "key does not exist"), "location", loc.String())
		}
		data = make([]byte, len(val))
		copy(data, val)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Put stores data at loc.
func (s *Store) Put(_ context.Context, loc domain.Location, data []byte) error {
	if loc.IsRoot() {
		return zerr.Wrap(domain.ErrInvalidLocation, "location names the repository root")
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFiles).Put(key(loc), data)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStorageFault, err.Error()), "location", loc.String())
	}
	return nil
}

// WriteChecksums stores all sidecars for loc in one transaction.
func (s *Store) WriteChecksums(_ context.Context, loc domain.Location, data []byte) error {
	if loc.IsRoot() {
		return zerr.Wrap(domain.ErrInvalidLocation, "checksums need a file location")
	}

	dir := loc.Parent()
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFiles)
		for _, sc := range checksum.Compute(data) {
			if err := bucket.Put(key(dir.Resolve(sc.FileName(loc.Name()))), []byte(sc.Value)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStorageFault, err.Error()), "location", loc.String())
	}
	return nil
}

func key(loc domain.Location) []byte {
	return []byte(loc.String())
}
