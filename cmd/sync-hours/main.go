package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/hoursync/hoursync/internal/config"
	"github.com/hoursync/hoursync/internal/dates"
	"github.com/hoursync/hoursync/internal/hoursync"
	"github.com/hoursync/hoursync/internal/logger"
	"github.com/hoursync/hoursync/internal/sheets"
	"github.com/hoursync/hoursync/internal/toggl"
)

func main() {
	log := logger.New()

	var sel dates.Selection
	flag.StringVar(&sel.Start, "start", "", "first date of range, day.month.year (15.01.2021)")
	flag.StringVar(&sel.Start, "s", "", "shorthand for -start")
	flag.StringVar(&sel.End, "end", "", "last date of range, day.month.year (25.02.2021)")
	flag.StringVar(&sel.End, "e", "", "shorthand for -end")
	flag.BoolVar(&sel.Week, "week", false, "sync one week")
	flag.BoolVar(&sel.Week, "w", false, "shorthand for -week")
	flag.BoolVar(&sel.Month, "month", false, "sync one month")
	flag.BoolVar(&sel.Month, "m", false, "shorthand for -month")
	flag.BoolVar(&sel.Past, "past", false, "sync the last week/month, not the current one")
	flag.BoolVar(&sel.Past, "p", false, "shorthand for -past")
	dryRun := flag.Bool("dry-run", false, "preview pending creations without pushing them")
	flag.Parse()

	window, err := dates.Resolve(time.Now(), sel)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid date selection")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.RequireHours(); err != nil {
		log.Fatal().Err(err).Msg("Incomplete configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	sheetsClient, err := sheets.NewClient(ctx, cfg.GoogleCredentialsFile, cfg.SpreadsheetID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Sheets client")
	}
	timesheet := sheets.NewTimesheet(sheetsClient)

	api := toggl.NewClient(cfg.TogglAPIToken)
	catalog, err := api.LoadCatalog(ctx, cfg.TogglClients)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load Toggl project catalog")
	}
	workspaceID, err := api.DefaultWorkspaceID(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve Toggl workspace")
	}
	tracker := hoursync.NewTogglTracker(api, catalog, workspaceID)

	syncer := hoursync.New(timesheet, tracker, *dryRun)
	if err := syncer.SyncHours(ctx, window); err != nil {
		log.Fatal().Err(err).Msg("Sync failed")
	}

	fmt.Println("Sync completed successfully.")
}
