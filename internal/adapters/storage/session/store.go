package session

import (
	"context"
	"errors"

	domain "fieldsync/internal/domain/session"
)

// ErrNotFound is returned when no session has the requested id.
var ErrNotFound = errors.New("session not found")

// Store persists Session state. Mutations go through Save/Delete with whole
// sessions, or through Update for read-modify-write sequences that must not
// interleave with concurrent mutations; implementations must keep the
// collection sorted ascending by date (stable, so equal dates retain
// insertion order).
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Session, error)
	Save(ctx context.Context, value domain.Session) error
	// Update applies fn to the stored session atomically: no other mutation
	// runs between the read and the write-back. Returns ErrNotFound for an
	// unknown id; an error from fn aborts without writing.
	Update(ctx context.Context, id string, fn func(domain.Session) (domain.Session, error)) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Session, error)
}
