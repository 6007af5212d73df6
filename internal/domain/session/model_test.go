package session_test

import (
	"testing"
	"time"

	"fieldsync/internal/domain/session"
)

func testDate(daysFromNow int) time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, daysFromNow)
}

// TestSession_Validate tests validation of Session.
func TestSession_Validate(t *testing.T) {
	tests := []struct {
		name    string
		session session.Session
		wantErr bool
	}{
		{
			name: "valid active session",
			session: session.Session{
				ID: "1", Date: testDate(1), Time: "16:00 - 17:00",
				Capacity: session.DefaultCapacity, Status: session.StatusActive,
			},
			wantErr: false,
		},
		{
			name: "valid cancelled session",
			session: session.Session{
				ID: "2", Date: testDate(2), Time: "09:05 - 10:35",
				Capacity: session.DefaultCapacity, Status: session.StatusCancelled,
			},
			wantErr: false,
		},
		{
			name:    "zero date",
			session: session.Session{ID: "3", Time: "16:00 - 17:00", Capacity: 6, Status: session.StatusActive},
			wantErr: true,
		},
		{
			name:    "missing zero padding",
			session: session.Session{ID: "4", Date: testDate(1), Time: "9:00 - 10:00", Capacity: 6, Status: session.StatusActive},
			wantErr: true,
		},
		{
			name:    "hour out of range",
			session: session.Session{ID: "5", Date: testDate(1), Time: "24:00 - 25:00", Capacity: 6, Status: session.StatusActive},
			wantErr: true,
		},
		{
			name:    "missing spaced dash",
			session: session.Session{ID: "6", Date: testDate(1), Time: "16:00-17:00", Capacity: 6, Status: session.StatusActive},
			wantErr: true,
		},
		{
			name:    "zero capacity",
			session: session.Session{ID: "7", Date: testDate(1), Time: "16:00 - 17:00", Status: session.StatusActive},
			wantErr: true,
		},
		{
			name:    "invalid status",
			session: session.Session{ID: "8", Date: testDate(1), Time: "16:00 - 17:00", Capacity: 6, Status: "postponed"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.session.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestRegistration_Validate tests validation of Registration.
func TestRegistration_Validate(t *testing.T) {
	valid := session.Registration{
		ID: "r1", TeamName: "FC Eagles", CoachName: "John Smith",
		CoachEmail: "john@example.com", CoachPhone: "123-456-7890",
	}

	tests := []struct {
		name    string
		mutate  func(r *session.Registration)
		wantErr error
	}{
		{name: "valid registration", mutate: func(r *session.Registration) {}, wantErr: nil},
		{
			name:    "team name too short",
			mutate:  func(r *session.Registration) { r.TeamName = "F" },
			wantErr: session.ErrTeamNameTooShort,
		},
		{
			name:    "coach name too short",
			mutate:  func(r *session.Registration) { r.CoachName = " J " },
			wantErr: session.ErrCoachNameTooShort,
		},
		{
			name:    "invalid email",
			mutate:  func(r *session.Registration) { r.CoachEmail = "not-an-email" },
			wantErr: session.ErrInvalidEmail,
		},
		{
			name:    "phone too short",
			mutate:  func(r *session.Registration) { r.CoachPhone = "123456" },
			wantErr: session.ErrPhoneTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			if err := r.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestSession_IsFull_Fullness tests capacity-derived helpers.
func TestSession_IsFull_Fullness(t *testing.T) {
	s := session.Session{Capacity: session.DefaultCapacity}
	if s.IsFull() {
		t.Error("empty session should not be full")
	}
	if s.Fullness() != 0 {
		t.Errorf("expected fullness 0, got %v", s.Fullness())
	}

	for i := 0; i < session.DefaultCapacity; i++ {
		s.Registrations = append(s.Registrations, session.Registration{ID: string(rune('a' + i))})
	}
	if !s.IsFull() {
		t.Error("session at capacity should be full")
	}
	if s.Fullness() != 1 {
		t.Errorf("expected fullness 1, got %v", s.Fullness())
	}

	s.Registrations = s.Registrations[:3]
	if got := s.Fullness(); got != 0.5 {
		t.Errorf("expected fullness 0.5 at 3/6, got %v", got)
	}
}

// TestSession_CheckedInCount tests the checked-in tally.
func TestSession_CheckedInCount(t *testing.T) {
	s := session.Session{
		Registrations: []session.Registration{
			{ID: "a", CheckedIn: true},
			{ID: "b"},
			{ID: "c", CheckedIn: true},
		},
	}
	if got := s.CheckedInCount(); got != 2 {
		t.Errorf("expected 2 checked in, got %d", got)
	}
}

// TestSession_FindRegistration tests lookup by registration id and coach email.
func TestSession_FindRegistration(t *testing.T) {
	s := session.Session{
		Registrations: []session.Registration{
			{ID: "r1", TeamName: "FC Eagles", CoachEmail: "john@example.com"},
			{ID: "r2", TeamName: "City Rovers", CoachEmail: "jane@example.com"},
		},
	}

	if r, ok := s.FindRegistration("r2"); !ok || r.TeamName != "City Rovers" {
		t.Errorf("FindRegistration(r2) = %+v, %v", r, ok)
	}
	if _, ok := s.FindRegistration("missing"); ok {
		t.Error("expected miss for unknown registration id")
	}
	if r, ok := s.FindByCoachEmail("john@example.com"); !ok || r.ID != "r1" {
		t.Errorf("FindByCoachEmail(john) = %+v, %v", r, ok)
	}
	if _, ok := s.FindByCoachEmail("nobody@example.com"); ok {
		t.Error("expected miss for unknown coach email")
	}
}

// TestSession_IsUpcoming tests midnight-boundary classification.
func TestSession_IsUpcoming(t *testing.T) {
	now := time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC)

	today := session.Session{Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)}
	if !today.IsUpcoming(now) {
		t.Error("session dated today should be upcoming even late in the day")
	}

	yesterday := session.Session{Date: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)}
	if yesterday.IsUpcoming(now) {
		t.Error("session dated yesterday should be past")
	}

	tomorrow := session.Session{Date: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)}
	if !tomorrow.IsUpcoming(now) {
		t.Error("session dated tomorrow should be upcoming")
	}
}

// TestSession_IsUpcoming_AcrossZones tests that classification treats the
// date as a calendar day even when the stored date and the clock carry
// different zones.
func TestSession_IsUpcoming_AcrossZones(t *testing.T) {
	west := time.FixedZone("UTC-5", -5*60*60)
	east := time.FixedZone("UTC+13", 13*60*60)

	// Date anchored at UTC midnight, clock reading midday in UTC-5: as an
	// instant the date is hours in the past, but it is still today.
	today := session.Session{Date: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)}
	if !today.IsUpcoming(time.Date(2026, 8, 30, 12, 0, 0, 0, west)) {
		t.Error("session dated today should be upcoming on a western clock")
	}

	// Just after midnight in UTC+13 the same UTC instant is still the
	// previous day; yesterday's session must not resurface as upcoming.
	yesterday := session.Session{Date: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)}
	if yesterday.IsUpcoming(time.Date(2026, 8, 30, 0, 30, 0, 0, east)) {
		t.Error("session dated yesterday should be past on an eastern clock")
	}

	// Dates stored in different zones but naming the same calendar day
	// classify identically.
	localDate := session.Session{Date: time.Date(2026, 8, 30, 0, 0, 0, 0, west)}
	utcDate := session.Session{Date: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)}
	now := time.Date(2026, 8, 30, 23, 0, 0, 0, west)
	if localDate.IsUpcoming(now) != utcDate.IsUpcoming(now) {
		t.Error("same calendar day must classify identically regardless of stored zone")
	}
}

// TestIsValidTimeRange tests the display-time pattern.
func TestIsValidTimeRange(t *testing.T) {
	valid := []string{"00:00 - 23:59", "16:00 - 17:00", "09:15 - 10:45"}
	for _, v := range valid {
		if !session.IsValidTimeRange(v) {
			t.Errorf("expected %q to be valid", v)
		}
	}

	invalid := []string{"", "16:00", "16:00 -17:00", "16:60 - 17:00", "4pm - 5pm", "16:00 - 17:00 "}
	for _, v := range invalid {
		if session.IsValidTimeRange(v) {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}
