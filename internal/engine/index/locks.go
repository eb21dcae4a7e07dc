package index

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gavel/internal/core/domain"
)

// lockArena hands out one exclusive token per (repository, directory).
// Entries are reference counted and dropped when the last holder releases.
// Keys are hashes, so a collision can only serialize unrelated directories.
type lockArena struct {
	mu      sync.Mutex
	entries map[uint64]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newLockArena() *lockArena {
	return &lockArena{entries: make(map[uint64]*lockEntry)}
}

func lockKey(repository string, dir domain.Location) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(repository)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(dir.String())
	return d.Sum64()
}

// acquire blocks until the token for (repository, dir) is held and returns
// the function releasing it.
func (a *lockArena) acquire(repository string, dir domain.Location) func() {
	key := lockKey(repository, dir)

	a.mu.Lock()
	entry, ok := a.entries[key]
	if !ok {
		entry = &lockEntry{}
		a.entries[key] = entry
	}
	entry.refs++
	a.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		a.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(a.entries, key)
		}
		a.mu.Unlock()
	}
}

func (a *lockArena) size() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}
