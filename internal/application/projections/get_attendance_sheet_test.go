package projections

import (
	"context"
	"testing"

	"fieldsync/internal/domain/session"
)

// TestQueryGetAttendanceSheet tests the monitor's working set: upcoming,
// active, with registrations, soonest first.
func TestQueryGetAttendanceSheet(t *testing.T) {
	cancelled := testSession("cancelled", 1, testRegistration("x", false))
	cancelled.Status = session.StatusCancelled

	store := &mockSessionStore{sessions: []session.Session{
		testSession("past", -1, testRegistration("a", true)),
		testSession("today", 0, testRegistration("b", true), testRegistration("c", false)),
		cancelled,
		testSession("no-teams", 2),
		testSession("later", 3, testRegistration("d", false)),
	}}

	result, err := QueryGetAttendanceSheet(context.Background(), testNow,
		GetAttendanceSheetDeps{SessionStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"today", "later"}
	if len(result.Sessions) != len(want) {
		t.Fatalf("expected %d sessions on the sheet, got %d", len(want), len(result.Sessions))
	}
	for i, id := range want {
		if result.Sessions[i].ID != id {
			t.Errorf("sheet[%d]: expected %s, got %s", i, id, result.Sessions[i].ID)
		}
	}

	if result.Sessions[0].CheckedIn != 1 || result.Sessions[0].Registered != 2 {
		t.Errorf("check-in progress wrong: %+v", result.Sessions[0])
	}
}
