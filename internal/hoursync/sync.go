// Package hoursync drives one timesheet-to-tracker sync run: fetch both
// sides for a window, reconcile, and push what the tracker is missing.
package hoursync

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hoursync/hoursync/internal/dates"
	"github.com/hoursync/hoursync/internal/logger"
	"github.com/hoursync/hoursync/internal/reconcile"
)

// Syncer reconciles the timesheet against the tracking service.
type Syncer struct {
	timesheet TimesheetSource
	tracker   Tracker
	dryRun    bool
}

func New(timesheet TimesheetSource, tracker Tracker, dryRun bool) *Syncer {
	return &Syncer{timesheet: timesheet, tracker: tracker, dryRun: dryRun}
}

// SyncHours runs one reconciliation over the window. The tracking service is
// authoritative: a tracked entry missing from the timesheet aborts the run,
// unmatched timesheet records are created one at a time. Reruns are
// idempotent because created entries match exactly on the next run.
func (s *Syncer) SyncHours(ctx context.Context, w dates.Window) error {
	log := logger.FromContext(ctx).With().
		Str("run_id", uuid.New().String()).
		Logger()
	ctx = logger.WithContext(ctx, log)

	log.Info().
		Time("start", w.Start).
		Time("end", w.End).
		Bool("dry_run", s.dryRun).
		Msg("Starting hours sync")

	candidate, err := s.timesheet.DaysInRange(ctx, w)
	if err != nil {
		return fmt.Errorf("reading timesheet: %w", err)
	}
	log.Info().Int("count", len(candidate)).Msg("Retrieved timesheet days")

	authoritative, err := s.tracker.Entries(ctx, w)
	if err != nil {
		return fmt.Errorf("reading tracked entries: %w", err)
	}
	log.Info().Int("count", len(authoritative)).Msg("Retrieved tracked entries")

	pending, err := reconcile.Plan(ctx, authoritative, candidate)
	if err != nil {
		return err
	}

	var created int
	for _, rec := range pending {
		if rec.Project == "" {
			return fmt.Errorf("project should be set in order to sync %s", rec)
		}
		if s.dryRun {
			log.Info().Stringer("entry", rec).Msg("[DRY RUN] Would create time entry")
			continue
		}
		if err := s.tracker.CreateEntry(ctx, rec); err != nil {
			return fmt.Errorf("creating entry %s: %w", rec, err)
		}
		log.Info().Stringer("entry", rec).Msg("Created time entry")
		created++
	}

	log.Info().
		Int("matched", len(candidate)-len(pending)).
		Int("pending", len(pending)).
		Int("created", created).
		Bool("dry_run", s.dryRun).
		Msg("Hours sync completed")

	return nil
}
