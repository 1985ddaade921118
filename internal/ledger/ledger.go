// Package ledger models bank transactions and the spreadsheet ledger rows
// they are reconciled against.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Transaction statuses. Booked is terminal: once a transaction is booked it
// never returns to pending.
const (
	StatusPending = "pending"
	StatusBooked  = "booked"
)

// Meta keys recognized during reconciliation.
const (
	MetaMessage  = "message"
	MetaStatus   = "status"
	MetaLink     = "link"
	MetaSupplier = "supplier"
	MetaDate     = "date"
)

// Transaction is a bank transaction as delivered by the import side.
type Transaction struct {
	// ID is the external identifier, stable once the ledger assigns it.
	ID     string
	Amount decimal.Decimal
	// Meta holds at minimum message and status, optionally link and supplier.
	Meta map[string]string
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %q", t.ID, t.Amount, t.Meta[MetaMessage])
}

// Row is a ledger spreadsheet row, positionally 1:1 with a Transaction when
// both lists are aligned.
type Row struct {
	ID       string
	Status   string
	Link     string
	Supplier string
	Date     string
}
