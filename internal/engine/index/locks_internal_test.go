package index

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gavel/internal/core/domain"
)

func TestLockArena_SerializesSameKey(t *testing.T) {
	arena := newLockArena()
	dir := domain.MustParseLocation("com/example/lib")

	release := arena.acquire("releases", dir)

	acquired := make(chan struct{})
	go func() {
		r := arena.acquire("releases", dir)
		close(acquired)
		r()
	}()

	// Wait until the second holder is queued on the token.
	for arena.refs("releases", dir) < 2 {
		runtime.Gosched()
	}
	select {
	case <-acquired:
		t.Fatal("second holder acquired a held token")
	default:
	}

	release()
	<-acquired
	for arena.size() > 0 {
		runtime.Gosched()
	}
}

func TestLockArena_IndependentKeys(t *testing.T) {
	arena := newLockArena()

	first := arena.acquire("releases", domain.MustParseLocation("g/a"))
	second := arena.acquire("releases", domain.MustParseLocation("g/b"))
	third := arena.acquire("snapshots", domain.MustParseLocation("g/a"))
	assert.Equal(t, 3, arena.size())

	first()
	second()
	third()
	assert.Equal(t, 0, arena.size())
}

func TestLockArena_RefCounting(t *testing.T) {
	arena := newLockArena()
	dir := domain.MustParseLocation("g/a")

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			release := arena.acquire("releases", dir)
			release()
		})
	}
	wg.Wait()

	assert.Equal(t, 0, arena.size())
}

func TestLockKey(t *testing.T) {
	assert.Equal(t, lockKey("r", domain.MustParseLocation("a/b")), lockKey("r", domain.MustParseLocation("/a//b/")))
	assert.NotEqual(t, lockKey("r", domain.MustParseLocation("a")), lockKey("ra", domain.Location{}))
}

func (a *lockArena) refs(repository string, dir domain.Location) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if entry, ok := a.entries[lockKey(repository, dir)]; ok {
		return entry.refs
	}
	return 0
}
