package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	sessionStore "fieldsync/internal/adapters/storage/session"
	"fieldsync/internal/domain/session"
)

// CancelOutcome distinguishes a soft cancel from outright removal.
type CancelOutcome string

// Cancel outcomes
const (
	OutcomeCancelled CancelOutcome = "cancelled" // session kept with status=cancelled
	OutcomeRemoved   CancelOutcome = "removed"   // empty session deleted outright
)

// SessionStoreForCancel defines the store interface needed by CancelSession.
type SessionStoreForCancel interface {
	GetByID(ctx context.Context, id string) (session.Session, error)
	Save(ctx context.Context, s session.Session) error
	Delete(ctx context.Context, id string) error
}

// CancelSessionInput carries input for the cancel-session orchestrator.
type CancelSessionInput struct {
	SessionID string
}

// CancelSessionDeps holds dependencies for CancelSession.
type CancelSessionDeps struct {
	SessionStore SessionStoreForCancel
}

// ExecuteCancelSession cancels or removes a session. A session holding
// registrations is soft-cancelled so the history and registration data
// survive; an empty one is deleted outright. An unknown id is a no-op that
// reports OutcomeRemoved — there was nothing to cancel. Other store failures
// propagate.
// POST: Session status=cancelled with registrations untouched, or session absent
func ExecuteCancelSession(ctx context.Context, input CancelSessionInput, deps CancelSessionDeps) (CancelOutcome, error) {
	s, err := deps.SessionStore.GetByID(ctx, input.SessionID)
	if errors.Is(err, sessionStore.ErrNotFound) {
		return OutcomeRemoved, nil
	}
	if err != nil {
		return "", err
	}

	if len(s.Registrations) > 0 {
		updated := s.Clone()
		updated.Status = session.StatusCancelled
		if err := deps.SessionStore.Save(ctx, updated); err != nil {
			return "", err
		}
		slog.Info("session_event", "event", "session_cancelled", "session_id", s.ID, "registrations", len(s.Registrations))
		return OutcomeCancelled, nil
	}

	if err := deps.SessionStore.Delete(ctx, s.ID); err != nil {
		return "", err
	}
	slog.Info("session_event", "event", "session_removed", "session_id", s.ID)
	return OutcomeRemoved, nil
}
