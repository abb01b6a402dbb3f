package snapshot

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/wealthmanager/portfolio-analytics-api/internal/model"
)

// Source yields the published snapshot to query services. Store is the
// production implementation; tests may substitute a fixture-backed source.
type Source interface {
	// Get returns the current snapshot, loading one when none is installed.
	Get(ctx context.Context) (*model.Snapshot, error)

	// Installed returns the current snapshot without triggering a load, or
	// nil when no load has succeeded yet.
	Installed() *model.Snapshot
}

// Store owns the published snapshot. Reads go through an atomic pointer so a
// request never observes a partially populated snapshot; loads are serialized
// so two concurrent lazy loads cannot both run. A failed load installs
// nothing: the previous snapshot, if any, stays authoritative.
type Store struct {
	loader  *Loader
	mu      sync.Mutex
	current atomic.Pointer[model.Snapshot]
}

// NewStore creates a Store backed by the given loader.
func NewStore(loader *Loader) *Store {
	return &Store{loader: loader}
}

// Get returns the installed snapshot, loading it first if none is installed.
func (s *Store) Get(ctx context.Context) (*model.Snapshot, error) {
	if snap := s.current.Load(); snap != nil {
		return snap, nil
	}
	return s.load(ctx)
}

// Installed returns the currently published snapshot without triggering a
// load. It returns nil until the first successful load.
func (s *Store) Installed() *model.Snapshot {
	return s.current.Load()
}

func (s *Store) load(ctx context.Context) (*model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another request may have finished loading while we waited on the lock.
	if snap := s.current.Load(); snap != nil {
		return snap, nil
	}

	snap, _, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	s.current.Store(snap)
	return snap, nil
}
