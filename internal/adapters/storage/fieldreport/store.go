package fieldreport

import (
	"context"

	domain "fieldsync/internal/domain/fieldreport"
)

// Store persists FieldReport state. Reports are append-only: created once,
// never mutated or deleted.
type Store interface {
	Save(ctx context.Context, value domain.FieldReport) error
	List(ctx context.Context) ([]domain.FieldReport, error)
}
