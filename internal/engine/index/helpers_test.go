package index_test

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"go.trai.ch/gavel/internal/core/domain"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, time.March, 9, 16, 4, 5, 0, time.UTC)

func request(version string) domain.PublishRequest {
	return domain.PublishRequest{
		Location:   domain.MustParseLocation(fmt.Sprintf("com/example/lib/%s/lib-%s.pom", version, version)),
		GroupID:    "com.example",
		ArtifactID: "lib",
		Version:    version,
		Identity:   "ci",
	}
}

// memStore is an in-memory ports.Storage.
type memStore struct {
	name string

	mu          sync.Mutex
	files       map[string][]byte
	checksummed []string
}

func newMemStore(name string) *memStore {
	return &memStore{name: name, files: make(map[string][]byte)}
}

func (m *memStore) Name() string { return m.name }

func (m *memStore) Get(_ context.Context, loc domain.Location) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[loc.String()]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "missing"), "location", loc.String())
	}
	return slices.Clone(data), nil
}

func (m *memStore) Put(_ context.Context, loc domain.Location, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[loc.String()] = slices.Clone(data)
	return nil
}

func (m *memStore) WriteChecksums(_ context.Context, loc domain.Location, _ []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checksummed = append(m.checksummed, loc.String())
	return nil
}

func (m *memStore) paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.files))
}

// locationIs matches a domain.Location by its segments.
type locationIs string

func (l locationIs) Matches(x any) bool {
	loc, ok := x.(domain.Location)
	return ok && loc.Equal(domain.MustParseLocation(string(l)))
}

func (l locationIs) String() string {
	return "is location " + string(l)
}

var _ gomock.Matcher = locationIs("")
