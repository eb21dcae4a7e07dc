// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/gavel/internal/core/domain"
)

// Storage is the byte-level view of one repository.
//
// Implementations own their retry and timeout policy. Failures other than
// absence are reported as domain.ErrStorageFault.
//
//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks
type Storage interface {
	// Name returns the repository name the storage serves.
	Name() string

	// Get returns the bytes stored at loc, or domain.ErrNotFound.
	Get(ctx context.Context, loc domain.Location) ([]byte, error)

	// Put stores data at loc, replacing any previous content.
	Put(ctx context.Context, loc domain.Location, data []byte) error

	// WriteChecksums computes and persists the checksum files for data stored at loc.
	WriteChecksums(ctx context.Context, loc domain.Location, data []byte) error
}

// StorageOpener opens the storage backend described by a repository configuration.
type StorageOpener interface {
	// Open returns the storage for cfg. The returned closer releases backend resources.
	Open(ctx context.Context, cfg domain.RepositoryConfig) (Storage, func() error, error)
}
