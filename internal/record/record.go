// Package record defines the canonical comparison record shared by both
// sources of truth and the normalizers that produce it.
package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/hoursync/hoursync/internal/duration"
)

const (
	// SheetDateFormat is the date form used in timesheet date cells.
	SheetDateFormat = "2 Jan 2006"
	// ISODateFormat is the canonical calendar-date form.
	ISODateFormat = "2006-01-02"
)

// Record is the canonical unit of reconciliation. Two records describe the
// same fact iff all four fields are equal; there is no fuzzy matching.
type Record struct {
	Minutes int
	Date    string // ISO-8601 calendar date
	Comment string
	Project string // lower-cased; may be empty on the timesheet side
}

func (r Record) String() string {
	return fmt.Sprintf("%s %dm %q (%s)", r.Date, r.Minutes, r.Comment, r.Project)
}

// Day returns the record's calendar date as a time.Time at midnight UTC.
func (r Record) Day() (time.Time, error) {
	return time.Parse(ISODateFormat, r.Date)
}

// FromSheetRow normalizes a slug-keyed timesheet row. The duration is decoded
// from the daily_hours column, the date from the date column in
// SheetDateFormat, the comment from tasks and the project, case-folded, from
// project. Rows with an empty duration are the caller's to filter out first.
func FromSheetRow(row map[string]string) (Record, error) {
	minutes, err := duration.Parse(row["daily_hours"])
	if err != nil {
		return Record{}, err
	}
	day, err := time.Parse(SheetDateFormat, strings.TrimSpace(row["date"]))
	if err != nil {
		return Record{}, fmt.Errorf("parsing sheet date %q: %w", row["date"], err)
	}
	return Record{
		Minutes: minutes,
		Date:    day.Format(ISODateFormat),
		Comment: strings.TrimSpace(row["tasks"]),
		Project: strings.ToLower(strings.TrimSpace(row["project"])),
	}, nil
}

// FromTracked normalizes a time-tracking entry: the start timestamp is
// truncated to its calendar date and the project name is case-folded.
func FromTracked(minutes int, start time.Time, description, project string) Record {
	return Record{
		Minutes: minutes,
		Date:    start.Format(ISODateFormat),
		Comment: description,
		Project: strings.ToLower(project),
	}
}
