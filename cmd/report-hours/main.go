package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/hoursync/hoursync/internal/config"
	"github.com/hoursync/hoursync/internal/dates"
	"github.com/hoursync/hoursync/internal/duration"
	"github.com/hoursync/hoursync/internal/logger"
	"github.com/hoursync/hoursync/internal/sheets"
	"github.com/hoursync/hoursync/internal/team"
)

const monthFlagFormat = "01.2006"

func main() {
	log := logger.New()

	monthStr := flag.String("month", "", "month to report, month.year (01.2021) (required)")
	customer := flag.String("customer", "", "customer name or short name (required)")
	employee := flag.String("employee", "", "employee nickname (required)")
	flag.Parse()

	if *monthStr == "" || *customer == "" || *employee == "" {
		log.Fatal().Msg("Error: --month, --customer and --employee are required")
	}

	month, err := time.Parse(monthFlagFormat, *monthStr)
	if err != nil {
		log.Fatal().Err(err).Str("month", *monthStr).Msg("Error: invalid month, expected month.year (01.2021)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.RequireReport(); err != nil {
		log.Fatal().Err(err).Msg("Incomplete configuration")
	}

	registry := team.NewRegistry(cfg.TeamDir)
	emp, err := registry.EmployeeByNickname(*employee)
	if err != nil {
		log.Fatal().Err(err).Msg("Unknown employee")
	}
	cust, err := registry.Customer(*customer)
	if err != nil {
		log.Fatal().Err(err).Msg("Unknown customer")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	timesheetClient, err := sheets.NewClient(ctx, cfg.GoogleCredentialsFile, cfg.SpreadsheetID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Sheets client")
	}
	timesheet := sheets.NewTimesheet(timesheetClient)

	window := dates.Window{
		Start: month,
		End:   month.AddDate(0, 1, -1),
	}
	records, err := timesheet.DaysInRange(ctx, window)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read timesheet")
	}

	var totalMinutes int
	for _, rec := range records {
		totalMinutes += rec.Minutes
	}
	hours := duration.Format(0, float64(totalMinutes))

	log.Info().
		Str("employee", emp.Name).
		Str("customer", cust.Name).
		Str("month", month.Format("January 2006")).
		Str("hours", hours).
		Msg("Computed monthly total")

	yearlyClient := timesheetClient
	if cfg.YearlySpreadsheetID != cfg.SpreadsheetID {
		yearlyClient, err = sheets.NewClient(ctx, cfg.GoogleCredentialsFile, cfg.YearlySpreadsheetID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize yearly Sheets client")
		}
	}
	yearly, err := sheets.NewYearlyHours(ctx, yearlyClient, month, cust.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open yearly hours section")
	}
	if err := yearly.SetMonthlyHours(ctx, emp.Name, hours); err != nil {
		log.Fatal().Err(err).Msg("Failed to write monthly hours")
	}

	fmt.Println("Report completed successfully.")
}
