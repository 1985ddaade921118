// Package dates provides calendar arithmetic for sync windows: enumerating
// the monthly partitions a window spans and resolving CLI date selections.
package dates

import (
	"fmt"
	"time"
)

// ExplicitDateFormat is the day.month.year form accepted on the command line.
const ExplicitDateFormat = "02.01.2006"

// Month identifies one monthly data partition.
type Month struct {
	Year  int
	Month time.Month
}

// Window is a bounded date range, inclusive on both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// EnumerateMonths returns every calendar month from the start pair up to but
// excluding the end pair, in chronological order. Months are linearized to
// year*12+month so year boundaries need no carry logic. The result is empty
// when start >= end.
func EnumerateMonths(startMonth time.Month, startYear int, endMonth time.Month, endYear int) []Month {
	start := startYear*12 + int(startMonth) - 1
	end := endYear*12 + int(endMonth) - 1

	var months []Month
	for ym := start; ym < end; ym++ {
		months = append(months, Month{Year: ym / 12, Month: time.Month(ym%12 + 1)})
	}
	return months
}

// MonthsCovering returns the monthly partitions touched by an inclusive
// window, end month included.
func MonthsCovering(w Window) []Month {
	endYear, endMonth := w.End.Year(), w.End.Month()
	if endMonth == time.December {
		endYear, endMonth = endYear+1, time.January
	} else {
		endMonth++
	}
	return EnumerateMonths(w.Start.Month(), w.Start.Year(), endMonth, endYear)
}

// First returns midnight on the first day of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Selection captures the raw CLI date arguments before resolution.
type Selection struct {
	Start string // explicit range start, ExplicitDateFormat
	End   string // explicit range end, ExplicitDateFormat
	Week  bool   // current (or past) calendar week
	Month bool   // current (or past) calendar month
	Past  bool   // shift the relative selection one period back
}

// Resolve turns a CLI selection into a concrete window relative to now.
// Relative selections end one day before the next period boundary and are
// clamped so the window never reaches into the future.
func Resolve(now time.Time, sel Selection) (Window, error) {
	if sel.Month && sel.Week {
		return Window{}, fmt.Errorf("month or week can be selected, but not both")
	}
	if (sel.Month || sel.Week) && (sel.Start != "" || sel.End != "") {
		return Window{}, fmt.Errorf("either month/week or explicit start/end should be provided, not both")
	}
	if !sel.Month && !sel.Week && (sel.Start == "" || sel.End == "") {
		return Window{}, fmt.Errorf("time range should be provided")
	}

	if sel.Start != "" {
		start, err := time.Parse(ExplicitDateFormat, sel.Start)
		if err != nil {
			return Window{}, fmt.Errorf("parsing start date %q: %w", sel.Start, err)
		}
		end, err := time.Parse(ExplicitDateFormat, sel.End)
		if err != nil {
			return Window{}, fmt.Errorf("parsing end date %q: %w", sel.End, err)
		}
		if !start.Before(end) {
			return Window{}, fmt.Errorf("start date should be before end date")
		}
		return Window{Start: start, End: end}, nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var start, end time.Time
	if sel.Week {
		// Monday is the first day of the week.
		start = today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
		if sel.Past {
			start = start.AddDate(0, 0, -7)
		}
		end = start.AddDate(0, 0, 7)
	} else {
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		if sel.Past {
			start = start.AddDate(0, -1, 0)
		}
		end = start.AddDate(0, 1, 0)
	}

	// The end date is included in the window, so step back one day; there is
	// no sense syncing into the future.
	end = end.AddDate(0, 0, -1)
	if end.After(today) {
		end = today
	}
	if !start.Before(end) {
		return Window{}, fmt.Errorf("start date should be before end date")
	}
	return Window{Start: start, End: end}, nil
}
