package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hoursync/hoursync/internal/bankimport"
	"github.com/hoursync/hoursync/internal/config"
	"github.com/hoursync/hoursync/internal/ledger"
	"github.com/hoursync/hoursync/internal/logger"
	"github.com/hoursync/hoursync/internal/sheets"
)

func main() {
	log := logger.New()

	csvPath := flag.String("csv", "", "bank export CSV file (required)")
	dryRun := flag.Bool("dry-run", false, "preview ledger changes without writing them")
	flag.Parse()

	if *csvPath == "" {
		log.Fatal().Msg("Error: --csv is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.RequireLedger(); err != nil {
		log.Fatal().Err(err).Msg("Incomplete configuration")
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open bank export")
	}
	defer file.Close()

	transactions, err := bankimport.Parse(file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *csvPath).Msg("Failed to parse bank export")
	}
	log.Info().Int("transactions", len(transactions)).Msg("Parsed bank export")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	sheetsClient, err := sheets.NewClient(ctx, cfg.GoogleCredentialsFile, cfg.LedgerSpreadsheetID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Sheets client")
	}
	sheet, err := sheets.NewLedger(ctx, sheetsClient, cfg.LedgerSheet)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open ledger sheet")
	}

	err = ledger.Reconcile(ctx, transactions, sheet.Rows(), sheet, *dryRun)
	if err != nil {
		var review *ledger.ManualReviewError
		if errors.As(err, &review) {
			log.Fatal().
				Int("row", review.Index).
				Stringer("transaction", review.Transaction).
				Msg("Please book this transaction as private and start over")
		}
		log.Fatal().Err(err).Msg("Ledger sync failed")
	}

	fmt.Println("Ledger sync completed successfully.")
}
