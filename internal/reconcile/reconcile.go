// Package reconcile computes the set difference between the authoritative
// time-tracking records and the candidate timesheet records for one window.
package reconcile

import (
	"context"
	"fmt"

	"github.com/hoursync/hoursync/internal/logger"
	"github.com/hoursync/hoursync/internal/record"
)

// ConflictError reports an authoritative record with no equal candidate.
// The authoritative system is never auto-corrected, so this aborts the run
// before any writes.
type ConflictError struct {
	Missing record.Record
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("entry exists in the tracking service but is missing from the timesheet: %s", e.Missing)
}

// Plan compares the two collections by exact four-field identity and returns
// the candidate records that must be created in the authoritative system, in
// candidate order.
//
// Any authoritative record absent from the candidate side is a ConflictError.
// A record already pushed on a previous run compares equal and produces no
// pending creation, which makes reruns idempotent.
func Plan(ctx context.Context, authoritative, candidate []record.Record) ([]record.Record, error) {
	log := logger.FromContext(ctx)

	for _, a := range authoritative {
		if !contains(candidate, a) {
			log.Error().
				Stringer("entry", a).
				Msg("Tracking service has an entry missing from the timesheet")
			return nil, &ConflictError{Missing: a}
		}
	}

	var pending []record.Record
	for _, c := range candidate {
		if !contains(authoritative, c) {
			pending = append(pending, c)
		}
	}

	log.Info().
		Int("authoritative", len(authoritative)).
		Int("candidate", len(candidate)).
		Int("pending", len(pending)).
		Msg("Reconciliation plan computed")

	return pending, nil
}

func contains(records []record.Record, want record.Record) bool {
	for _, r := range records {
		if r == want {
			return true
		}
	}
	return false
}
