package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/hoursync/hoursync/internal/logger"
)

// manualReviewMarker flags transactions an operator must book by hand before
// the sync may continue.
const manualReviewMarker = "privat"

// Sink is the ledger spreadsheet as the reconciliation needs it: keyed cell
// updates on existing rows and bulk insertion when the ledger is empty.
type Sink interface {
	UpdateCell(ctx context.Context, rowIndex int, columnKey, value string) error
	AppendTransactions(ctx context.Context, transactions []Transaction) error
}

// AlignmentError reports that the transaction list and the ledger rows have
// drifted out of positional alignment.
type AlignmentError struct {
	Index         int
	TransactionID string
	RowID         string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("ledger row %d does not match: transaction id %q, row id %q", e.Index, e.TransactionID, e.RowID)
}

// ManualReviewError halts the sync until an operator disposes of the flagged
// transaction.
type ManualReviewError struct {
	Index       int
	Transaction Transaction
}

func (e *ManualReviewError) Error() string {
	return fmt.Sprintf("transaction %d needs manual review, book it as private and start over: %s", e.Index, e.Transaction)
}

// Reconcile aligns the ledger sheet with the imported transactions.
//
// An empty ledger receives all transactions in bulk. Otherwise transactions
// and rows are paired by index: both sides are append-only, so position is
// identity. The run aborts before any write on a manual-review marker or an
// id mismatch. Field updates are one-way and idempotent: status moves to
// booked only forward, link and supplier follow the transaction.
func Reconcile(ctx context.Context, transactions []Transaction, rows []Row, sink Sink, dryRun bool) error {
	log := logger.FromContext(ctx)

	for i, tx := range transactions {
		if strings.Contains(tx.Meta[MetaMessage], manualReviewMarker) {
			return &ManualReviewError{Index: i, Transaction: tx}
		}
	}

	if len(rows) == 0 {
		log.Info().
			Int("transactions", len(transactions)).
			Bool("dry_run", dryRun).
			Msg("Ledger is empty, writing all transactions")
		if dryRun {
			return nil
		}
		if err := sink.AppendTransactions(ctx, transactions); err != nil {
			return fmt.Errorf("writing transactions to empty ledger: %w", err)
		}
		return nil
	}

	pairs := len(transactions)
	if len(rows) < pairs {
		pairs = len(rows)
	}

	// Verify alignment across all pairs before the first write, so an
	// integrity problem never gets compounded by partial mutation.
	for i := 0; i < pairs; i++ {
		tx, row := transactions[i], rows[i]
		if tx.ID != "" && row.ID != "" && tx.ID != row.ID {
			return &AlignmentError{Index: i, TransactionID: tx.ID, RowID: row.ID}
		}
	}

	var updates int
	for i := 0; i < pairs; i++ {
		tx, row := transactions[i], rows[i]

		if tx.Meta[MetaStatus] == StatusBooked && row.Status != StatusBooked {
			// Transaction was booked meanwhile; booked never rolls back.
			if err := update(ctx, sink, i, MetaStatus, StatusBooked, dryRun); err != nil {
				return err
			}
			updates++
		}
		if link := tx.Meta[MetaLink]; link != "" && link != row.Link {
			if err := update(ctx, sink, i, MetaLink, link, dryRun); err != nil {
				return err
			}
			updates++
		}
		if supplier := tx.Meta[MetaSupplier]; supplier != "" && supplier != row.Supplier {
			if err := update(ctx, sink, i, MetaSupplier, supplier, dryRun); err != nil {
				return err
			}
			updates++
		}

		// Annotate the transaction with the ledger's status, without ever
		// regressing a booked transaction.
		if tx.Meta != nil && row.Status != "" && tx.Meta[MetaStatus] != StatusBooked {
			tx.Meta[MetaStatus] = row.Status
		}
	}

	log.Info().
		Int("transactions", len(transactions)).
		Int("rows", len(rows)).
		Int("updates", updates).
		Bool("dry_run", dryRun).
		Msg("Ledger reconciliation completed")

	return nil
}

func update(ctx context.Context, sink Sink, row int, key, value string, dryRun bool) error {
	log := logger.FromContext(ctx)
	if dryRun {
		log.Info().
			Int("row", row).
			Str("column", key).
			Str("value", value).
			Msg("[DRY RUN] Would update ledger cell")
		return nil
	}
	if err := sink.UpdateCell(ctx, row, key, value); err != nil {
		return fmt.Errorf("updating ledger row %d column %s: %w", row, key, err)
	}
	log.Info().
		Int("row", row).
		Str("column", key).
		Str("value", value).
		Msg("Updated ledger cell")
	return nil
}
