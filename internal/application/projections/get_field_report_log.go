package projections

import (
	"context"
	"sort"

	"fieldsync/internal/domain/fieldreport"
)

// GetFieldReportLogDeps holds dependencies for the projection.
type GetFieldReportLogDeps struct {
	FieldReportStore FieldReportListStore
}

// QueryGetFieldReportLog lists every submitted field report, newest first.
// Admins read this to spot condition trends; the latest submission matters
// most, so it leads.
func QueryGetFieldReportLog(ctx context.Context, deps GetFieldReportLogDeps) ([]fieldreport.FieldReport, error) {
	reports, err := deps.FieldReportStore.List(ctx)
	if err != nil {
		return nil, err
	}

	log := append([]fieldreport.FieldReport(nil), reports...)
	sort.SliceStable(log, func(a, b int) bool {
		return log[a].SubmittedAt.After(log[b].SubmittedAt)
	})
	return log, nil
}
