package fieldreport

import (
	"context"
	"sync"

	domain "fieldsync/internal/domain/fieldreport"
)

// MemoryStore implements Store over an in-process collection with the same
// copy-on-write discipline as the session store: appends build a fresh slice,
// so returned snapshots never change.
type MemoryStore struct {
	mu      sync.RWMutex
	reports []domain.FieldReport
}

// NewMemoryStore creates an empty in-memory field report store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save appends a FieldReport to the collection.
// PRE: entity has been validated
// POST: Entity is appended; earlier snapshots are unchanged
func (s *MemoryStore) Save(ctx context.Context, entity domain.FieldReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.FieldReport, 0, len(s.reports)+1)
	next = append(next, s.reports...)
	next = append(next, entity)
	s.reports = next
	return nil
}

// List returns the current snapshot in submission order.
func (s *MemoryStore) List(ctx context.Context) ([]domain.FieldReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reports, nil
}
