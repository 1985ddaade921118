// Package duration converts between the timesheet's human duration forms
// (a "HH:MM" string or fractional hours) and an integer minute count.
package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxBareHours guards against unit confusion: a bare number above this is
// almost certainly minutes pasted where hours were expected.
const maxBareHours = 24

// FormatError reports a duration value that could not be interpreted.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid duration %q: %s", e.Value, e.Reason)
}

// Parse decodes a raw duration cell into minutes.
// An empty value decodes to 0. A colon form is read as HH:MM. A bare number
// is read as fractional hours and rejected above 24 hours.
func Parse(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	s := raw
	if !strings.Contains(s, ":") {
		hours, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, &FormatError{Value: raw, Reason: "not a number or HH:MM"}
		}
		if hours > maxBareHours {
			return 0, &FormatError{Value: raw, Reason: fmt.Sprintf("hour value %v is over %d, check format", hours, maxBareHours)}
		}
		s = Format(hours, 0)
	}

	i := strings.LastIndex(s, ":")
	hours, err := strconv.Atoi(strings.TrimSpace(s[:i]))
	if err != nil {
		return 0, &FormatError{Value: raw, Reason: "malformed hour part"}
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return 0, &FormatError{Value: raw, Reason: "malformed minute part"}
	}
	return hours*60 + minutes, nil
}

// Format normalizes hours and minutes into a zero-padded "HH:MM" string.
// The hour part is not wrapped at 24.
func Format(hours, minutes float64) string {
	total := hours*60 + minutes
	h := math.Floor(total / 60)
	return fmt.Sprintf("%02.0f:%02.0f", h, total-h*60)
}
