package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	sessionStore "fieldsync/internal/adapters/storage/session"
	"fieldsync/internal/domain/session"
)

// SessionStoreForCheckIn defines the store interface needed by CheckInTeam.
type SessionStoreForCheckIn interface {
	Update(ctx context.Context, id string, fn func(session.Session) (session.Session, error)) error
}

// CheckInTeamInput carries input for the check-in orchestrator.
type CheckInTeamInput struct {
	SessionID      string
	RegistrationID string
}

// CheckInTeamResult carries the outcome of a check-in attempt. An unknown
// session or registration id is reported with Found=false, not an error —
// callers branch on it for user messaging.
type CheckInTeamResult struct {
	TeamName string
	Found    bool
}

// CheckInTeamDeps holds dependencies for CheckInTeam.
type CheckInTeamDeps struct {
	SessionStore SessionStoreForCheckIn
}

// errRegistrationNotFound aborts the update without writing; mapped to the
// Found=false result, never surfaced to callers.
var errRegistrationNotFound = errors.New("registration not found")

// ExecuteCheckInTeam marks a registration as present. Idempotent: checking
// in an already-checked-in team leaves state unchanged and still returns the
// team name. Cancelled sessions accept no check-ins. The flag flips inside an
// atomic store update, so a concurrent whole-session write cannot revert it.
// POST: Registration CheckedIn=true; CheckedIn never transitions back to false
func ExecuteCheckInTeam(ctx context.Context, input CheckInTeamInput, deps CheckInTeamDeps) (CheckInTeamResult, error) {
	var result CheckInTeamResult
	alreadyIn := false

	err := deps.SessionStore.Update(ctx, input.SessionID, func(s session.Session) (session.Session, error) {
		if s.IsCancelled() {
			return session.Session{}, session.ErrSessionCancelled
		}
		for i := range s.Registrations {
			if s.Registrations[i].ID != input.RegistrationID {
				continue
			}
			alreadyIn = s.Registrations[i].CheckedIn
			s.Registrations[i].CheckedIn = true
			result = CheckInTeamResult{TeamName: s.Registrations[i].TeamName, Found: true}
			return s, nil
		}
		return session.Session{}, errRegistrationNotFound
	})
	if errors.Is(err, sessionStore.ErrNotFound) || errors.Is(err, errRegistrationNotFound) {
		return CheckInTeamResult{}, nil
	}
	if err != nil {
		return CheckInTeamResult{}, err
	}

	if !alreadyIn {
		slog.Info("session_event", "event", "team_checked_in", "session_id", input.SessionID, "registration_id", input.RegistrationID, "team", result.TeamName)
	}

	return result, nil
}
