package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	sessionStore "fieldsync/internal/adapters/storage/session"
	"fieldsync/internal/domain/session"
)

// CancelRegistrationInput carries input for the cancel-registration orchestrator.
type CancelRegistrationInput struct {
	SessionID      string
	RegistrationID string
}

// CancelRegistrationDeps holds dependencies for CancelRegistration.
type CancelRegistrationDeps struct {
	SessionStore SessionStoreForRegister
}

// ExecuteCancelRegistration removes one registration from a session's list.
// Unknown session or registration ids are a no-op; other store failures
// propagate.
// POST: Registration absent; the rest of the list is unchanged, so a
// register-then-cancel round trip restores the prior content
func ExecuteCancelRegistration(ctx context.Context, input CancelRegistrationInput, deps CancelRegistrationDeps) error {
	removed := false

	err := deps.SessionStore.Update(ctx, input.SessionID, func(s session.Session) (session.Session, error) {
		kept := make([]session.Registration, 0, len(s.Registrations))
		for _, r := range s.Registrations {
			if r.ID == input.RegistrationID {
				removed = true
				continue
			}
			kept = append(kept, r)
		}
		s.Registrations = kept
		return s, nil
	})
	if errors.Is(err, sessionStore.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if removed {
		slog.Info("session_event", "event", "registration_cancelled", "session_id", input.SessionID, "registration_id", input.RegistrationID)
	}
	return nil
}
