package hoursync

import (
	"context"
	"fmt"
	"time"

	"github.com/hoursync/hoursync/internal/dates"
	"github.com/hoursync/hoursync/internal/record"
	"github.com/hoursync/hoursync/internal/toggl"
)

// Created entries get a fixed start hour; the timesheet only knows days.
const entryStartHour = 10

// TogglTracker adapts the Toggl API client and its project catalog to the
// Tracker interface.
type TogglTracker struct {
	api         *toggl.Client
	catalog     *toggl.Catalog
	workspaceID int64
}

func NewTogglTracker(api *toggl.Client, catalog *toggl.Catalog, workspaceID int64) *TogglTracker {
	return &TogglTracker{api: api, catalog: catalog, workspaceID: workspaceID}
}

// Entries lists the window's time entries as canonical records. The API end
// date is exclusive, so the inclusive window end is advanced by one day.
func (t *TogglTracker) Entries(ctx context.Context, w dates.Window) ([]record.Record, error) {
	start := midnightUTC(w.Start)
	end := midnightUTC(w.End).AddDate(0, 0, 1)

	entries, err := t.api.TimeEntries(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}

	records := make([]record.Record, 0, len(entries))
	for _, entry := range entries {
		project, ok := t.catalog.ProjectName(entry.ProjectID)
		if !ok {
			return nil, fmt.Errorf("time entry %d references unknown project %d", entry.ID, entry.ProjectID)
		}
		records = append(records, record.FromTracked(entry.Minutes(), entry.Start, entry.Description, project))
	}
	return records, nil
}

// CreateEntry pushes one record as a new time entry on its date.
func (t *TogglTracker) CreateEntry(ctx context.Context, rec record.Record) error {
	projectID, ok := t.catalog.ProjectID(rec.Project)
	if !ok {
		return fmt.Errorf("project %q is not in the Toggl project catalog", rec.Project)
	}
	day, err := rec.Day()
	if err != nil {
		return fmt.Errorf("record date: %w", err)
	}

	_, err = t.api.CreateTimeEntry(ctx, toggl.NewTimeEntry{
		Description: rec.Comment,
		Duration:    int64(rec.Minutes) * 60,
		Start:       time.Date(day.Year(), day.Month(), day.Day(), entryStartHour, 0, 0, 0, time.UTC),
		ProjectID:   projectID,
		WorkspaceID: t.workspaceID,
		CreatedWith: "hoursync",
	})
	if err != nil {
		return fmt.Errorf("creating time entry: %w", err)
	}
	return nil
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
