package sheets

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hoursync/hoursync/internal/dates"
	"github.com/hoursync/hoursync/internal/record"
)

const (
	// Daily timesheets keep rows 1-4 for summary cells; the data table
	// header sits at row 5.
	timesheetHeaderRow = 5
	// One tab holds at most one month of days.
	timesheetMaxRows = 31
	// Tabs are named after the month, e.g. "Jan 21".
	timesheetTabFormat = "Jan 06"
)

// Timesheet reads the daily timesheet document, one tab per month.
type Timesheet struct {
	client *Client
}

func NewTimesheet(client *Client) *Timesheet {
	return &Timesheet{client: client}
}

// DaysInRange returns the normalized records of every day in the inclusive
// window, in date order. Days without logged hours are not facts and are
// dropped before normalization.
func (t *Timesheet) DaysInRange(ctx context.Context, w dates.Window) ([]record.Record, error) {
	startISO := w.Start.Format(record.ISODateFormat)
	endISO := w.End.Format(record.ISODateFormat)

	var records []record.Record
	for _, month := range dates.MonthsCovering(w) {
		tab := month.First().Format(timesheetTabFormat)
		ws, err := t.client.Worksheet(ctx, tab, timesheetHeaderRow)
		if err != nil {
			return nil, fmt.Errorf("opening timesheet tab %q: %w", tab, err)
		}
		for _, row := range ws.Rows(0, timesheetMaxRows) {
			if strings.TrimSpace(row["daily_hours"]) == "" {
				continue
			}
			rec, err := record.FromSheetRow(row)
			if err != nil {
				return nil, fmt.Errorf("timesheet tab %q: %w", tab, err)
			}
			// ISO dates order lexicographically.
			if rec.Date < startISO || rec.Date > endISO {
				continue
			}
			records = append(records, rec)
		}
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, nil
}
