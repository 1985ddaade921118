package hoursync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hoursync/hoursync/internal/dates"
	"github.com/hoursync/hoursync/internal/reconcile"
	"github.com/hoursync/hoursync/internal/record"
)

type mockTimesheet struct {
	records []record.Record
	err     error
}

func (m *mockTimesheet) DaysInRange(ctx context.Context, w dates.Window) ([]record.Record, error) {
	return m.records, m.err
}

type mockTracker struct {
	entries   []record.Record
	created   []record.Record
	createErr error
}

func (m *mockTracker) Entries(ctx context.Context, w dates.Window) ([]record.Record, error) {
	return m.entries, nil
}

func (m *mockTracker) CreateEntry(ctx context.Context, rec record.Record) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, rec)
	return nil
}

func window(t *testing.T) dates.Window {
	t.Helper()
	return dates.Window{
		Start: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2021, time.January, 31, 0, 0, 0, 0, time.UTC),
	}
}

func rec(minutes int, date, comment, project string) record.Record {
	return record.Record{Minutes: minutes, Date: date, Comment: comment, Project: project}
}

func TestSyncHours_CreatesMissingEntries(t *testing.T) {
	sheet := &mockTimesheet{records: []record.Record{
		rec(60, "2021-01-05", "review", "acme"),
		rec(90, "2021-01-06", "standup", "acme"),
	}}
	tracker := &mockTracker{entries: []record.Record{
		rec(60, "2021-01-05", "review", "acme"),
	}}

	if err := New(sheet, tracker, false).SyncHours(context.Background(), window(t)); err != nil {
		t.Fatalf("SyncHours() failed: %v", err)
	}
	if len(tracker.created) != 1 || tracker.created[0] != sheet.records[1] {
		t.Errorf("created = %v, want [%v]", tracker.created, sheet.records[1])
	}
}

func TestSyncHours_ConflictAborts(t *testing.T) {
	sheet := &mockTimesheet{}
	tracker := &mockTracker{entries: []record.Record{
		rec(60, "2021-01-05", "review", "acme"),
	}}

	err := New(sheet, tracker, false).SyncHours(context.Background(), window(t))
	var conflict *reconcile.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("error = %v, want *reconcile.ConflictError", err)
	}
	if len(tracker.created) != 0 {
		t.Error("no entries may be created after a conflict")
	}
}

func TestSyncHours_RequiresProject(t *testing.T) {
	sheet := &mockTimesheet{records: []record.Record{
		rec(60, "2021-01-05", "review", ""),
	}}
	tracker := &mockTracker{}

	if err := New(sheet, tracker, false).SyncHours(context.Background(), window(t)); err == nil {
		t.Fatal("expected error for record without project")
	}
	if len(tracker.created) != 0 {
		t.Error("nothing may be created when a record has no project")
	}
}

func TestSyncHours_DryRunCreatesNothing(t *testing.T) {
	sheet := &mockTimesheet{records: []record.Record{
		rec(60, "2021-01-05", "review", "acme"),
	}}
	tracker := &mockTracker{}

	if err := New(sheet, tracker, true).SyncHours(context.Background(), window(t)); err != nil {
		t.Fatalf("SyncHours() failed: %v", err)
	}
	if len(tracker.created) != 0 {
		t.Errorf("created = %v, want none in dry run", tracker.created)
	}
}

func TestSyncHours_NothingToDo(t *testing.T) {
	both := []record.Record{rec(60, "2021-01-05", "review", "acme")}
	sheet := &mockTimesheet{records: both}
	tracker := &mockTracker{entries: both}

	if err := New(sheet, tracker, false).SyncHours(context.Background(), window(t)); err != nil {
		t.Fatalf("SyncHours() failed: %v", err)
	}
	if len(tracker.created) != 0 {
		t.Errorf("created = %v, want none", tracker.created)
	}
}

func TestSyncHours_TimesheetErrorPropagates(t *testing.T) {
	sheet := &mockTimesheet{err: errors.New("sheet unavailable")}
	tracker := &mockTracker{}

	if err := New(sheet, tracker, false).SyncHours(context.Background(), window(t)); err == nil {
		t.Fatal("expected timesheet error to propagate")
	}
}
