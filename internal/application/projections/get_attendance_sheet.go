package projections

import (
	"context"
	"time"
)

// GetAttendanceSheetResult carries the query result.
type GetAttendanceSheetResult struct {
	Sessions []SessionSummary
}

// GetAttendanceSheetDeps holds dependencies for the projection.
type GetAttendanceSheetDeps struct {
	SessionStore SessionListStore
}

// QueryGetAttendanceSheet lists the sessions a field monitor works from:
// upcoming, not cancelled, holding at least one registration. Soonest first,
// matching the order teams arrive at the field.
func QueryGetAttendanceSheet(ctx context.Context, now time.Time, deps GetAttendanceSheetDeps) (GetAttendanceSheetResult, error) {
	sessions, err := deps.SessionStore.List(ctx)
	if err != nil {
		return GetAttendanceSheetResult{}, err
	}

	var result GetAttendanceSheetResult
	for _, s := range sessions {
		if !s.IsUpcoming(now) || s.IsCancelled() {
			continue
		}
		if len(s.Registrations) == 0 {
			continue
		}
		result.Sessions = append(result.Sessions, summarize(s))
	}

	return result, nil
}
