package coach

import (
	"net/mail"
	"strings"

	"fieldsync/internal/domain/session"
)

// Identity holds remembered contact details used to pre-fill future
// registrations. It is a cache value, not a domain entity: overwritten on
// every successful registration and cleared explicitly.
type Identity struct {
	CoachName  string `json:"coachName"`
	CoachEmail string `json:"coachEmail"`
	CoachPhone string `json:"coachPhone"`
}

// Validate checks if the Identity has valid data.
// Shares the registration field rules so a remembered identity can always
// pre-fill a valid registration form.
// PRE: Identity struct is populated
// POST: Returns nil if valid, error otherwise
func (i *Identity) Validate() error {
	if len(strings.TrimSpace(i.CoachName)) < session.MinCoachNameLength {
		return session.ErrCoachNameTooShort
	}
	if _, err := mail.ParseAddress(i.CoachEmail); err != nil {
		return session.ErrInvalidEmail
	}
	if len(strings.TrimSpace(i.CoachPhone)) < session.MinPhoneLength {
		return session.ErrPhoneTooShort
	}
	return nil
}
