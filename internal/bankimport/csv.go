// Package bankimport parses bank account CSV exports into ledger
// transactions.
package bankimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hoursync/hoursync/internal/ledger"
)

const (
	exportDateFormat = "02.01.2006"
	exportNumFields  = 7

	colID       = 0
	colDate     = 1
	colAmount   = 2
	colMessage  = 3
	colStatus   = 4
	colLink     = 5
	colSupplier = 6
)

// Parse reads a bank export CSV and returns transactions in file order.
// The expected columns are id, date, amount, message, status, link, supplier
// with a header row; id, status, link and supplier may be empty.
func Parse(r io.Reader) ([]ledger.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = exportNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading bank CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []ledger.Transaction
	for i, rec := range records[1:] {
		txn, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseRow(rec []string) (ledger.Transaction, error) {
	date, err := time.Parse(exportDateFormat, rec[colDate])
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	status := strings.TrimSpace(rec[colStatus])
	if status == "" {
		status = ledger.StatusPending
	}
	if status != ledger.StatusPending && status != ledger.StatusBooked {
		return ledger.Transaction{}, fmt.Errorf("unknown status %q", rec[colStatus])
	}

	meta := map[string]string{
		ledger.MetaMessage: rec[colMessage],
		ledger.MetaStatus:  status,
		ledger.MetaDate:    date.Format("2006-01-02"),
	}
	if link := strings.TrimSpace(rec[colLink]); link != "" {
		meta[ledger.MetaLink] = link
	}
	if supplier := strings.TrimSpace(rec[colSupplier]); supplier != "" {
		meta[ledger.MetaSupplier] = supplier
	}

	return ledger.Transaction{
		ID:     strings.TrimSpace(rec[colID]),
		Amount: amount,
		Meta:   meta,
	}, nil
}
