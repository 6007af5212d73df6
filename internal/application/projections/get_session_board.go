package projections

import (
	"context"
	"time"

	"fieldsync/internal/domain/session"
)

// SessionSummary represents one session resolved for display, with the
// derived occupancy figures the views need.
type SessionSummary struct {
	ID            string
	Date          time.Time
	Time          string
	Status        string
	Cancelled     bool
	Registered    int
	Capacity      int
	Fullness      float64
	IsFull        bool
	CheckedIn     int
	Registrations []session.Registration
}

// GetSessionBoardResult carries the query result.
type GetSessionBoardResult struct {
	Upcoming []SessionSummary
	Past     []SessionSummary
}

// GetSessionBoardDeps holds dependencies for the projection.
type GetSessionBoardDeps struct {
	SessionStore SessionListStore
}

// QueryGetSessionBoard partitions the collection into upcoming and past
// around today-at-midnight. A session dated today is upcoming regardless of
// its time range. Upcoming is sorted soonest first; past is most recent
// first, so both lists read top-down in order of relevance.
// POST: Every session appears in exactly one of the two lists
func QueryGetSessionBoard(ctx context.Context, now time.Time, deps GetSessionBoardDeps) (GetSessionBoardResult, error) {
	sessions, err := deps.SessionStore.List(ctx)
	if err != nil {
		return GetSessionBoardResult{}, err
	}

	var result GetSessionBoardResult
	for _, s := range sessions {
		summary := summarize(s)
		if s.IsUpcoming(now) {
			result.Upcoming = append(result.Upcoming, summary)
		} else {
			// Prepend: the store lists ascending, past reads newest first.
			result.Past = append([]SessionSummary{summary}, result.Past...)
		}
	}

	return result, nil
}

func summarize(s session.Session) SessionSummary {
	return SessionSummary{
		ID:            s.ID,
		Date:          s.Date,
		Time:          s.Time,
		Status:        s.Status,
		Cancelled:     s.IsCancelled(),
		Registered:    len(s.Registrations),
		Capacity:      s.Capacity,
		Fullness:      s.Fullness(),
		IsFull:        s.IsFull(),
		CheckedIn:     s.CheckedInCount(),
		Registrations: append([]session.Registration(nil), s.Registrations...),
	}
}
