// Package storage opens the configured storage backend for a repository.
package storage

import (
	"context"

	"go.trai.ch/gavel/internal/adapters/storage/boltstore"
	"go.trai.ch/gavel/internal/adapters/storage/fsstore"
	"go.trai.ch/gavel/internal/core/domain"
	"go.trai.ch/gavel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StorageOpener = (*Opener)(nil)

// Opener dispatches on the configured backend.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the storage described by cfg.
func (o *Opener) Open(_ context.Context, cfg domain.RepositoryConfig) (ports.Storage, func() error, error) {
	switch cfg.Backend {
	case domain.BackendFS:
		store, err := fsstore.New(cfg.Name, cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() error { return nil }, nil
	case domain.BackendBolt:
		store, err := boltstore.Open(cfg.Name, cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown storage backend"), "backend", cfg.Backend),
			"repository", cfg.Name,
		)
	}
}
