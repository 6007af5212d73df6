// Package forms holds the request DTOs for the web layer and their
// validation rules. Domain invariants are enforced again in the
// orchestrators; the rules here exist to produce friendly messages
// before a request reaches them.
package forms

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"fieldsync/internal/domain/session"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// timerange matches the session display format, "HH:MM - HH:MM".
	v.RegisterValidation("timerange", func(fl validator.FieldLevel) bool {
		return session.IsValidTimeRange(fl.Field().String())
	})
	return v
}

// CreateSessionForm carries the admin's new-session submission.
type CreateSessionForm struct {
	Date string `json:"Date" validate:"required,datetime=2006-01-02"`
	Time string `json:"Time" validate:"required,timerange"`
}

// RegisterTeamForm carries a coach's registration submission.
type RegisterTeamForm struct {
	SessionID  string `json:"SessionID" validate:"required"`
	TeamName   string `json:"TeamName" validate:"required,min=2"`
	CoachName  string `json:"CoachName" validate:"required,min=2"`
	CoachEmail string `json:"CoachEmail" validate:"required,email"`
	CoachPhone string `json:"CoachPhone" validate:"required,min=10"`
}

// FieldReportForm carries a field-condition report submission.
type FieldReportForm struct {
	SessionID      string `json:"SessionID" validate:"required"`
	RegistrationID string `json:"RegistrationID" validate:"required"`
	Rating         int    `json:"Rating" validate:"required,min=1,max=5"`
	Comments       string `json:"Comments" validate:"max=500"`
}

// LoginForm carries the admin password submission.
type LoginForm struct {
	Password string `json:"Password" validate:"required"`
}

// fieldMessages maps form field names to user-facing validation messages.
var fieldMessages = map[string]string{
	"Date":           "date must be provided as YYYY-MM-DD",
	"Time":           "time must be in HH:MM - HH:MM format",
	"SessionID":      "session must be selected",
	"RegistrationID": "team must be selected",
	"TeamName":       "team name must be at least 2 characters",
	"CoachName":      "coach name must be at least 2 characters",
	"CoachEmail":     "a valid coach email is required",
	"CoachPhone":     "coach phone must be at least 10 characters",
	"Rating":         "rating must be between 1 and 5",
	"Comments":       "comments must be at most 500 characters",
	"Password":       "password is required",
}

// Validate runs the struct rules and returns the first failure as a
// user-facing error.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].Field()
		if msg, ok := fieldMessages[field]; ok {
			return errors.New(msg)
		}
		return fmt.Errorf("%s is invalid", field)
	}
	return err
}

// ParseDate converts the form date into a midnight timestamp in the server's
// zone, matching how seeded sessions anchor their dates.
// PRE: form validation passed, so value matches 2006-01-02
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.Local)
}
