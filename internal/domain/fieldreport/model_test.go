package fieldreport_test

import (
	"strings"
	"testing"
	"time"

	"fieldsync/internal/domain/fieldreport"
)

// TestFieldReport_Validate tests validation of FieldReport.
func TestFieldReport_Validate(t *testing.T) {
	tests := []struct {
		name    string
		report  fieldreport.FieldReport
		wantErr error
	}{
		{
			name: "valid report",
			report: fieldreport.FieldReport{
				ID: "1", SessionID: "ses-1", RegistrationID: "reg-1",
				Rating: 4, Comments: "Sprinkler head in the north corner is broken.",
				SubmittedAt: time.Now(),
			},
			wantErr: nil,
		},
		{
			name: "empty comments allowed",
			report: fieldreport.FieldReport{
				ID: "2", SessionID: "ses-1", RegistrationID: "reg-1", Rating: 5,
			},
			wantErr: nil,
		},
		{
			name:    "missing session reference",
			report:  fieldreport.FieldReport{ID: "3", RegistrationID: "reg-1", Rating: 3},
			wantErr: fieldreport.ErrEmptySessionID,
		},
		{
			name:    "missing registration reference",
			report:  fieldreport.FieldReport{ID: "4", SessionID: "ses-1", Rating: 3},
			wantErr: fieldreport.ErrEmptyRegistrationID,
		},
		{
			name:    "rating zero",
			report:  fieldreport.FieldReport{ID: "5", SessionID: "ses-1", RegistrationID: "reg-1", Rating: 0},
			wantErr: fieldreport.ErrInvalidRating,
		},
		{
			name:    "rating above max",
			report:  fieldreport.FieldReport{ID: "6", SessionID: "ses-1", RegistrationID: "reg-1", Rating: 6},
			wantErr: fieldreport.ErrInvalidRating,
		},
		{
			name: "comments too long",
			report: fieldreport.FieldReport{
				ID: "7", SessionID: "ses-1", RegistrationID: "reg-1", Rating: 3,
				Comments: strings.Repeat("x", fieldreport.MaxCommentsLength+1),
			},
			wantErr: fieldreport.ErrCommentsTooLong,
		},
		{
			name: "comments at limit",
			report: fieldreport.FieldReport{
				ID: "8", SessionID: "ses-1", RegistrationID: "reg-1", Rating: 3,
				Comments: strings.Repeat("x", fieldreport.MaxCommentsLength),
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.report.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
