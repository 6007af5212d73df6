package fieldreport

import (
	"errors"
	"strings"
	"time"
)

// Rating bounds and comment limit for field reports.
const (
	MinRating         = 1
	MaxRating         = 5
	MaxCommentsLength = 500
)

// Domain errors
var (
	ErrEmptySessionID      = errors.New("field report must reference a session")
	ErrEmptyRegistrationID = errors.New("field report must reference a registration")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrCommentsTooLong     = errors.New("comments cannot exceed 500 characters")
)

// FieldReport is post-session feedback on field condition, tied to a
// session and a registering team. Created once, never mutated or deleted.
// The session and registration references are not enforced as foreign keys.
type FieldReport struct {
	ID             string
	SessionID      string
	RegistrationID string
	Rating         int // 1-5 inclusive
	Comments       string
	SubmittedAt    time.Time
}

// Validate checks if the FieldReport has valid data.
// PRE: FieldReport struct is populated
// POST: Returns nil if valid, error otherwise
func (f *FieldReport) Validate() error {
	if strings.TrimSpace(f.SessionID) == "" {
		return ErrEmptySessionID
	}
	if strings.TrimSpace(f.RegistrationID) == "" {
		return ErrEmptyRegistrationID
	}
	if f.Rating < MinRating || f.Rating > MaxRating {
		return ErrInvalidRating
	}
	if len(f.Comments) > MaxCommentsLength {
		return ErrCommentsTooLong
	}
	return nil
}
