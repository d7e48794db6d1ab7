package aggregator

import (
	"sync/atomic"

	"bevtrends-api/core/domain"
)

// SnapshotStore holds the latest unconditioned aggregation. Readers never
// block and always see a complete snapshot; writers swap the whole value.
type SnapshotStore struct {
	current atomic.Pointer[domain.Snapshot]
}

// NewSnapshotStore creates an empty store
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Load returns the current snapshot or nil
func (s *SnapshotStore) Load() *domain.Snapshot {
	return s.current.Load()
}

// Store replaces the current snapshot
func (s *SnapshotStore) Store(snap *domain.Snapshot) {
	s.current.Store(snap)
}
