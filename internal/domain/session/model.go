package session

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"
)

// DefaultCapacity is the fixed team capacity for every session.
// Stored per session so future designs can vary it.
const DefaultCapacity = 6

// Session status constants
const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// ValidStatuses contains all valid status values.
var ValidStatuses = []string{StatusActive, StatusCancelled}

// Min length constants for registration fields.
const (
	MinTeamNameLength  = 2
	MinCoachNameLength = 2
	MinPhoneLength     = 10
)

// timePattern matches a 24-hour zero-padded time range, e.g. "16:00 - 17:00".
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d) - ([01]\d|2[0-3]):([0-5]\d)$`)

// Domain errors
var (
	ErrEmptyDate         = errors.New("session date must be set")
	ErrInvalidTime       = errors.New("time must be in HH:MM - HH:MM format")
	ErrInvalidCapacity   = errors.New("capacity must be a positive integer")
	ErrInvalidStatus     = errors.New("status must be active or cancelled")
	ErrTeamNameTooShort  = errors.New("team name must be at least 2 characters")
	ErrCoachNameTooShort = errors.New("coach name must be at least 2 characters")
	ErrInvalidEmail      = errors.New("coach email must be a valid address")
	ErrPhoneTooShort     = errors.New("coach phone must be at least 10 characters")
	ErrSessionFull       = errors.New("session is full")
	ErrSessionCancelled  = errors.New("session is cancelled")
	ErrDuplicateCoach    = errors.New("coach already holds a registration in this session")
)

// Registration is a team's claim on one slot within a Session.
// It has no existence outside the Session that lists it.
type Registration struct {
	ID         string
	TeamName   string
	CoachName  string
	CoachEmail string
	CoachPhone string
	CheckedIn  bool
}

// Validate checks if the Registration has valid data.
// PRE: Registration struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Registration) Validate() error {
	if len(strings.TrimSpace(r.TeamName)) < MinTeamNameLength {
		return ErrTeamNameTooShort
	}
	if len(strings.TrimSpace(r.CoachName)) < MinCoachNameLength {
		return ErrCoachNameTooShort
	}
	if _, err := mail.ParseAddress(r.CoachEmail); err != nil {
		return ErrInvalidEmail
	}
	if len(strings.TrimSpace(r.CoachPhone)) < MinPhoneLength {
		return ErrPhoneTooShort
	}
	return nil
}

// Session represents a scheduled practice slot with fixed team capacity.
type Session struct {
	ID            string
	Date          time.Time
	Time          string // display range, "HH:MM - HH:MM"
	Capacity      int
	Registrations []Registration
	Status        string // active, cancelled
}

// Validate checks if the Session has valid data.
// PRE: Session struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Session) Validate() error {
	if s.Date.IsZero() {
		return ErrEmptyDate
	}
	if !timePattern.MatchString(s.Time) {
		return ErrInvalidTime
	}
	if s.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if !isValidStatus(s.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// Clone returns a deep copy of the session that is safe to mutate.
// Registrations are value structs, so copying the slice is sufficient.
func (s *Session) Clone() Session {
	c := *s
	c.Registrations = append([]Registration(nil), s.Registrations...)
	return c
}

// IsValidTimeRange reports whether a display string matches "HH:MM - HH:MM".
func IsValidTimeRange(t string) bool {
	return timePattern.MatchString(t)
}

// IsCancelled returns true if the session has been soft-cancelled.
// INVARIANT: Session fields are not mutated
func (s *Session) IsCancelled() bool {
	return s.Status == StatusCancelled
}

// IsFull returns true once the registration count reaches capacity.
// INVARIANT: Session fields are not mutated
func (s *Session) IsFull() bool {
	return len(s.Registrations) >= s.Capacity
}

// Fullness returns registrations/capacity as a ratio for progress display.
// PRE: Capacity is positive
// POST: Returns a value in [0, 1] for any session honouring the capacity invariant
func (s *Session) Fullness() float64 {
	if s.Capacity <= 0 {
		return 0
	}
	return float64(len(s.Registrations)) / float64(s.Capacity)
}

// CheckedInCount returns how many registered teams have checked in.
// INVARIANT: Session fields are not mutated
func (s *Session) CheckedInCount() int {
	n := 0
	for _, r := range s.Registrations {
		if r.CheckedIn {
			n++
		}
	}
	return n
}

// FindRegistration returns the registration with the given id, if present.
// INVARIANT: Session fields are not mutated
func (s *Session) FindRegistration(registrationID string) (Registration, bool) {
	for _, r := range s.Registrations {
		if r.ID == registrationID {
			return r, true
		}
	}
	return Registration{}, false
}

// FindByCoachEmail returns the registration held by the given coach email, if any.
// INVARIANT: Session fields are not mutated
func (s *Session) FindByCoachEmail(email string) (Registration, bool) {
	for _, r := range s.Registrations {
		if r.CoachEmail == email {
			return r, true
		}
	}
	return Registration{}, false
}

// IsUpcoming classifies the session against today-at-midnight.
// Sessions dated today count as upcoming; time-of-day is irrelevant.
func (s *Session) IsUpcoming(now time.Time) bool {
	return !Day(s.Date).Before(Day(now))
}

// Midnight normalizes a timestamp to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Day reduces a timestamp to its calendar day, discarding the zone along
// with the time of day. Session dates are calendar labels; comparing them as
// instants would misclassify dates stored in a different zone than now's.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isValidStatus(status string) bool {
	for _, v := range ValidStatuses {
		if v == status {
			return true
		}
	}
	return false
}
