package projections

import (
	"context"

	"fieldsync/internal/domain/fieldreport"
	"fieldsync/internal/domain/session"
)

// SessionListStore interface for session collection queries.
type SessionListStore interface {
	List(ctx context.Context) ([]session.Session, error)
}

// FieldReportListStore interface for field report queries.
type FieldReportListStore interface {
	List(ctx context.Context) ([]fieldreport.FieldReport, error)
}
