package projections

import (
	"context"
	"time"

	"fieldsync/internal/domain/session"
)

// ReportableSession represents a session a field report can be filed for,
// with the registrations offered as reporter choices.
type ReportableSession struct {
	ID            string
	Date          time.Time
	Time          string
	Registrations []session.Registration
}

// GetReportableSessionsDeps holds dependencies for the projection.
type GetReportableSessionsDeps struct {
	SessionStore SessionListStore
}

// QueryGetReportableSessions lists sessions eligible for a field-condition
// report: dated today or earlier, with at least one registered team. A team
// must have been on the field for anyone to describe its condition. Ordered
// most recent first, since reports usually concern the latest session.
func QueryGetReportableSessions(ctx context.Context, now time.Time, deps GetReportableSessionsDeps) ([]ReportableSession, error) {
	sessions, err := deps.SessionStore.List(ctx)
	if err != nil {
		return nil, err
	}

	today := session.Day(now)
	var result []ReportableSession
	for _, s := range sessions {
		if session.Day(s.Date).After(today) {
			continue
		}
		if len(s.Registrations) == 0 {
			continue
		}
		// Prepend: the store lists ascending, reportable reads newest first.
		result = append([]ReportableSession{{
			ID:            s.ID,
			Date:          s.Date,
			Time:          s.Time,
			Registrations: append([]session.Registration(nil), s.Registrations...),
		}}, result...)
	}

	return result, nil
}
