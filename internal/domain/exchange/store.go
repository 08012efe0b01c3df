package exchange

import (
	"context"
	"sync"

	"oafund/internal/domain/currency"
)

// Store keeps the latest snapshot per base currency. Freshness is decided by
// the Cache, never by the store.
type Store interface {
	// Get returns the snapshot for base; ok is false when none is stored.
	Get(ctx context.Context, base currency.Currency) (snap Snapshot, ok bool, err error)
	// Put replaces the snapshot for base.
	Put(ctx context.Context, base currency.Currency, snap Snapshot) error
}

// MemoryStore is the in-process Store used by default.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[currency.Currency]Snapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[currency.Currency]Snapshot)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, base currency.Currency) (Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[base]
	return snap, ok, nil
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, base currency.Currency, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[base] = snap
	return nil
}

// Ensure interface compliance at compile time.
var _ Store = (*MemoryStore)(nil)
