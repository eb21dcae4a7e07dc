// Package index maintains the version index documents of a repository.
//
// Publishing writes a descriptor for the new version, then merges the
// version into the index document of the artifact directory under a
// per-directory lock. Queries read the index document and extract, filter
// and order its versions.
package index

import (
	"time"

	"go.trai.ch/gavel/internal/core/ports"
)

// Service publishes versions and answers version queries.
// It holds no state besides the lock arena and is safe for concurrent use.
type Service struct {
	authorizer ports.Authorizer
	codec      ports.MetadataCodec
	sorter     ports.VersionSorter
	logger     ports.Logger
	telemetry  ports.Telemetry
	locks      *lockArena
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithNow sets the clock used for lastUpdated timestamps.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a Service.
func New(
	authorizer ports.Authorizer,
	codec ports.MetadataCodec,
	sorter ports.VersionSorter,
	logger ports.Logger,
	telemetry ports.Telemetry,
	opts ...Option,
) *Service {
	s := &Service{
		authorizer: authorizer,
		codec:      codec,
		sorter:     sorter,
		logger:     logger,
		telemetry:  telemetry,
		locks:      newLockArena(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
