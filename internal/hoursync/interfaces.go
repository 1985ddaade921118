package hoursync

import (
	"context"

	"github.com/hoursync/hoursync/internal/dates"
	"github.com/hoursync/hoursync/internal/record"
)

// TimesheetSource provides the candidate records: the operator-edited
// timesheet rows for a window, normalized and date-ordered.
type TimesheetSource interface {
	DaysInRange(ctx context.Context, w dates.Window) ([]record.Record, error)
}

// Tracker is the authoritative time-tracking service. Entries returns the
// normalized records already present; CreateEntry pushes one pending record.
type Tracker interface {
	Entries(ctx context.Context, w dates.Window) ([]record.Record, error)
	CreateEntry(ctx context.Context, rec record.Record) error
}
