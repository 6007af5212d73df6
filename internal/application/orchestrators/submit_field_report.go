package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"fieldsync/internal/domain/fieldreport"

	"github.com/google/uuid"
)

// FieldReportStore defines the store interface needed by SubmitFieldReport.
type FieldReportStore interface {
	Save(ctx context.Context, f fieldreport.FieldReport) error
}

// SubmitFieldReportInput carries input for the field report orchestrator.
type SubmitFieldReportInput struct {
	SessionID      string
	RegistrationID string
	Rating         int
	Comments       string
}

// SubmitFieldReportDeps holds dependencies for SubmitFieldReport.
type SubmitFieldReportDeps struct {
	FieldReportStore FieldReportStore
	GenerateID       func() string
	Now              func() time.Time
}

// ExecuteSubmitFieldReport appends a field-condition report with a generated
// id and the current timestamp. Reports are never mutated or deleted; the
// session/registration references are recorded as given, not checked against
// the collection.
// PRE: Rating and Comments passed form validation
// POST: FieldReport persisted with SubmittedAt=Now()
func ExecuteSubmitFieldReport(ctx context.Context, input SubmitFieldReportInput, deps SubmitFieldReportDeps) (fieldreport.FieldReport, error) {
	generateID := deps.GenerateID
	if generateID == nil {
		generateID = func() string { return uuid.New().String() }
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	f := fieldreport.FieldReport{
		ID:             generateID(),
		SessionID:      input.SessionID,
		RegistrationID: input.RegistrationID,
		Rating:         input.Rating,
		Comments:       input.Comments,
		SubmittedAt:    now(),
	}

	if err := f.Validate(); err != nil {
		return fieldreport.FieldReport{}, err
	}

	if err := deps.FieldReportStore.Save(ctx, f); err != nil {
		return fieldreport.FieldReport{}, err
	}

	slog.Info("session_event", "event", "field_report_submitted", "report_id", f.ID, "session_id", f.SessionID, "rating", f.Rating)

	return f, nil
}
