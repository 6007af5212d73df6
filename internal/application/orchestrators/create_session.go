package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"fieldsync/internal/domain/session"

	"github.com/google/uuid"
)

// SessionStoreForCreate defines the store interface needed by CreateSession.
type SessionStoreForCreate interface {
	Save(ctx context.Context, s session.Session) error
}

// CreateSessionInput carries input for the create-session orchestrator.
type CreateSessionInput struct {
	Date time.Time
	Time string // display range, "HH:MM - HH:MM"
}

// CreateSessionDeps holds dependencies for CreateSession.
type CreateSessionDeps struct {
	SessionStore SessionStoreForCreate
	GenerateID   func() string    // defaults to uuid
	Now          func() time.Time // unused here, kept for symmetry in tests
}

// ExecuteCreateSession constructs a new active session with fixed capacity
// and empty registrations, and inserts it into the collection. The store
// keeps the collection sorted ascending by date.
// PRE: Date and Time have passed form validation
// POST: Session persisted with Status=active, Capacity=DefaultCapacity
func ExecuteCreateSession(ctx context.Context, input CreateSessionInput, deps CreateSessionDeps) (session.Session, error) {
	generateID := deps.GenerateID
	if generateID == nil {
		generateID = func() string { return uuid.New().String() }
	}

	s := session.Session{
		ID:       generateID(),
		Date:     input.Date,
		Time:     input.Time,
		Capacity: session.DefaultCapacity,
		Status:   session.StatusActive,
	}

	if err := s.Validate(); err != nil {
		return session.Session{}, err
	}

	if err := deps.SessionStore.Save(ctx, s); err != nil {
		return session.Session{}, err
	}

	slog.Info("session_event", "event", "session_created", "session_id", s.ID, "date", s.Date.Format("2006-01-02"), "time", s.Time)

	return s, nil
}
