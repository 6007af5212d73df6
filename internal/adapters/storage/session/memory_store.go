package session

import (
	"context"
	"sort"
	"sync"

	domain "fieldsync/internal/domain/session"
)

// MemoryStore implements Store over an in-process collection.
//
// Updates are copy-on-write: every mutation builds a fresh slice and swaps it
// in under the lock, so a slice handed to a reader is never modified
// afterwards. Readers must treat returned slices as read-only and clone a
// session before mutating it.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions []domain.Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetByID retrieves a Session by its ID.
// PRE: id is non-empty
// POST: Returns the entity or ErrNotFound
func (s *MemoryStore) GetByID(ctx context.Context, id string) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, nil
		}
	}
	return domain.Session{}, ErrNotFound
}

// Save persists a Session (insert or replace by id).
// PRE: entity has been validated
// POST: Collection contains the entity, sorted ascending by date;
// equal dates retain insertion order
func (s *MemoryStore) Save(ctx context.Context, entity domain.Session) error {
	entity = entity.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Session, 0, len(s.sessions)+1)
	replaced := false
	for _, sess := range s.sessions {
		if sess.ID == entity.ID {
			next = append(next, entity)
			replaced = true
			continue
		}
		next = append(next, sess)
	}
	if !replaced {
		next = append(next, entity)
	}
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Date.Before(next[j].Date)
	})

	s.sessions = next
	return nil
}

// Update applies fn to the stored session while holding the write lock, so
// the read-modify-write cannot interleave with a concurrent Save or Update.
// PRE: fn mutates only its argument
// POST: Collection holds fn's result, re-sorted; unchanged if fn errors
func (s *MemoryStore) Update(ctx context.Context, id string, fn func(domain.Session) (domain.Session, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sess := range s.sessions {
		if sess.ID != id {
			continue
		}
		updated, err := fn(sess.Clone())
		if err != nil {
			return err
		}
		updated = updated.Clone()

		next := append([]domain.Session(nil), s.sessions...)
		next[i] = updated
		sort.SliceStable(next, func(a, b int) bool {
			return next[a].Date.Before(next[b].Date)
		})

		s.sessions = next
		return nil
	}
	return ErrNotFound
}

// Delete removes a Session. Deleting an unknown id is a no-op.
// PRE: id is non-empty
// POST: Entity with given id is absent
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if sess.ID == id {
			continue
		}
		next = append(next, sess)
	}

	s.sessions = next
	return nil
}

// List returns the current collection snapshot, sorted ascending by date.
// The snapshot is never modified after being returned.
func (s *MemoryStore) List(ctx context.Context) ([]domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions, nil
}
