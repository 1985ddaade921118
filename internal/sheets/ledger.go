package sheets

import (
	"context"
	"fmt"

	"github.com/hoursync/hoursync/internal/ledger"
)

// Ledger is the transaction ledger worksheet. It implements ledger.Sink.
type Ledger struct {
	ws *Worksheet
}

// NewLedger opens the ledger worksheet; its header is the first row.
func NewLedger(ctx context.Context, client *Client, sheetName string) (*Ledger, error) {
	ws, err := client.Worksheet(ctx, sheetName, 1)
	if err != nil {
		return nil, fmt.Errorf("opening ledger sheet: %w", err)
	}
	return &Ledger{ws: ws}, nil
}

// Rows returns all ledger rows in sheet order.
func (l *Ledger) Rows() []ledger.Row {
	var rows []ledger.Row
	for _, row := range l.ws.Rows(0, 0) {
		rows = append(rows, ledger.Row{
			ID:       row["id"],
			Status:   row["status"],
			Link:     row["link"],
			Supplier: row["supplier"],
			Date:     row["date"],
		})
	}
	return rows
}

// UpdateCell writes one ledger cell by row index and column key.
func (l *Ledger) UpdateCell(ctx context.Context, rowIndex int, columnKey, value string) error {
	return l.ws.UpdateCell(ctx, rowIndex, columnKey, value)
}

// AppendTransactions writes transactions into the empty ledger, mapping
// transaction fields onto whatever columns the sheet declares.
func (l *Ledger) AppendTransactions(ctx context.Context, transactions []ledger.Transaction) error {
	rows := make([][]interface{}, 0, len(transactions))
	for _, tx := range transactions {
		row := make([]interface{}, 0, len(l.ws.Headers()))
		for _, header := range l.ws.Headers() {
			switch header {
			case "id":
				row = append(row, tx.ID)
			case "amount":
				row = append(row, tx.Amount.String())
			default:
				row = append(row, tx.Meta[header])
			}
		}
		rows = append(rows, row)
	}
	return l.ws.AppendRows(ctx, rows)
}
