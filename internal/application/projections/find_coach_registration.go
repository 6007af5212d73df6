package projections

import (
	"context"

	"fieldsync/internal/domain/session"
)

// FindCoachRegistrationsQuery carries query parameters.
type FindCoachRegistrationsQuery struct {
	CoachEmail string
}

// FindCoachRegistrationsResult maps session id to the registration the coach
// holds in that session. Sessions where the coach is not registered are absent.
type FindCoachRegistrationsResult struct {
	BySession map[string]session.Registration
}

// FindCoachRegistrationsDeps holds dependencies for the projection.
type FindCoachRegistrationsDeps struct {
	SessionStore SessionListStore
}

// QueryFindCoachRegistrations resolves which sessions the given coach email
// already holds a slot in. The views use it to swap "Register" for "Cancel
// Registration" and to block double booking. An empty email matches nothing.
func QueryFindCoachRegistrations(ctx context.Context, query FindCoachRegistrationsQuery, deps FindCoachRegistrationsDeps) (FindCoachRegistrationsResult, error) {
	result := FindCoachRegistrationsResult{BySession: make(map[string]session.Registration)}
	if query.CoachEmail == "" {
		return result, nil
	}

	sessions, err := deps.SessionStore.List(ctx)
	if err != nil {
		return FindCoachRegistrationsResult{}, err
	}

	for _, s := range sessions {
		if reg, ok := s.FindByCoachEmail(query.CoachEmail); ok {
			result.BySession[s.ID] = reg
		}
	}

	return result, nil
}
