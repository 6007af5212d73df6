package orchestrators

import (
	"context"
	"log/slog"

	"fieldsync/internal/domain/coach"
	"fieldsync/internal/domain/session"

	"github.com/google/uuid"
)

// SessionStoreForRegister defines the store interface needed by RegisterTeam
// and CancelRegistration. Both mutate one session's registration list, and
// both must do it atomically so a concurrent check-in is never overwritten by
// a stale snapshot.
type SessionStoreForRegister interface {
	Update(ctx context.Context, id string, fn func(session.Session) (session.Session, error)) error
}

// CoachRemember defines the coach cache interface needed by RegisterTeam.
type CoachRemember interface {
	Set(ctx context.Context, identity coach.Identity)
}

// RegisterTeamInput carries input for the register-team orchestrator.
type RegisterTeamInput struct {
	SessionID  string
	TeamName   string
	CoachName  string
	CoachEmail string
	CoachPhone string
}

// RegisterTeamDeps holds dependencies for RegisterTeam.
type RegisterTeamDeps struct {
	SessionStore SessionStoreForRegister
	CoachCache   CoachRemember // optional: nil skips remembering the coach
	GenerateID   func() string
}

// ExecuteRegisterTeam appends a new registration to a session.
//
// Capacity, duplicate-coach, and cancelled-session rules are enforced here
// rather than trusted to disabled buttons in the views, so no caller can
// violate the invariants.
// PRE: SessionID names an existing session; fields passed form validation
// POST: Registration appended with CheckedIn=false; coach identity remembered
// INVARIANT: registrations never exceed capacity; one registration per coach email per session
func ExecuteRegisterTeam(ctx context.Context, input RegisterTeamInput, deps RegisterTeamDeps) (session.Registration, error) {
	generateID := deps.GenerateID
	if generateID == nil {
		generateID = func() string { return uuid.New().String() }
	}

	reg := session.Registration{
		ID:         generateID(),
		TeamName:   input.TeamName,
		CoachName:  input.CoachName,
		CoachEmail: input.CoachEmail,
		CoachPhone: input.CoachPhone,
		CheckedIn:  false,
	}
	if err := reg.Validate(); err != nil {
		return session.Registration{}, err
	}

	// The rule checks and the append run inside one atomic update, so two
	// racing registrations cannot both pass the capacity check.
	err := deps.SessionStore.Update(ctx, input.SessionID, func(s session.Session) (session.Session, error) {
		if s.IsCancelled() {
			return session.Session{}, session.ErrSessionCancelled
		}
		if s.IsFull() {
			return session.Session{}, session.ErrSessionFull
		}
		if _, exists := s.FindByCoachEmail(input.CoachEmail); exists {
			return session.Session{}, session.ErrDuplicateCoach
		}
		s.Registrations = append(s.Registrations, reg)
		return s, nil
	})
	if err != nil {
		return session.Registration{}, err
	}

	slog.Info("session_event", "event", "team_registered", "session_id", input.SessionID, "registration_id", reg.ID, "team", reg.TeamName)

	// Remember the registrant for pre-fill; best effort.
	if deps.CoachCache != nil {
		deps.CoachCache.Set(ctx, coach.Identity{
			CoachName:  input.CoachName,
			CoachEmail: input.CoachEmail,
			CoachPhone: input.CoachPhone,
		})
	}

	return reg, nil
}
