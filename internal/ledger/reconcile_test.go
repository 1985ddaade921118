package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

type cellUpdate struct {
	row   int
	key   string
	value string
}

type mockSink struct {
	updates  []cellUpdate
	appended [][]Transaction
}

func (m *mockSink) UpdateCell(ctx context.Context, rowIndex int, columnKey, value string) error {
	m.updates = append(m.updates, cellUpdate{rowIndex, columnKey, value})
	return nil
}

func (m *mockSink) AppendTransactions(ctx context.Context, transactions []Transaction) error {
	m.appended = append(m.appended, transactions)
	return nil
}

func tx(id, message, status string, meta map[string]string) Transaction {
	m := map[string]string{MetaMessage: message, MetaStatus: status}
	for k, v := range meta {
		m[k] = v
	}
	return Transaction{ID: id, Amount: decimal.NewFromInt(-42), Meta: m}
}

func TestReconcile_EmptyLedgerBulkInsert(t *testing.T) {
	sink := &mockSink{}
	txs := []Transaction{
		tx("1", "office chairs", StatusPending, nil),
		tx("2", "hosting", StatusBooked, nil),
	}

	if err := Reconcile(context.Background(), txs, nil, sink, false); err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}
	if len(sink.appended) != 1 || len(sink.appended[0]) != 2 {
		t.Errorf("appended = %v, want one batch of 2", sink.appended)
	}
	if len(sink.updates) != 0 {
		t.Errorf("updates = %v, want none", sink.updates)
	}
}

func TestReconcile_BookedStatusPropagates(t *testing.T) {
	sink := &mockSink{}
	txs := []Transaction{
		tx("1", "office chairs", StatusPending, nil),
		tx("2", "hosting", StatusPending, nil),
		tx("3", "licenses", StatusBooked, nil),
	}
	rows := []Row{
		{ID: "1", Status: StatusPending},
		{ID: "2", Status: StatusPending},
		{ID: "3", Status: StatusPending},
	}

	if err := Reconcile(context.Background(), txs, rows, sink, false); err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}
	want := []cellUpdate{{2, MetaStatus, StatusBooked}}
	if len(sink.updates) != 1 || sink.updates[0] != want[0] {
		t.Errorf("updates = %v, want %v", sink.updates, want)
	}
}

func TestReconcile_BookedNeverRollsBack(t *testing.T) {
	sink := &mockSink{}
	txs := []Transaction{tx("1", "hosting", StatusPending, nil)}
	rows := []Row{{ID: "1", Status: StatusBooked}}

	if err := Reconcile(context.Background(), txs, rows, sink, false); err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}
	if len(sink.updates) != 0 {
		t.Errorf("updates = %v, want none", sink.updates)
	}
}

func TestReconcile_LinkAndSupplierFollowTransaction(t *testing.T) {
	sink := &mockSink{}
	txs := []Transaction{
		tx("1", "office chairs", StatusPending, map[string]string{
			MetaLink:     "https://shop.example/order/77",
			MetaSupplier: "Chairs & Co",
		}),
	}
	rows := []Row{{ID: "1", Status: StatusPending, Link: "https://old.example", Supplier: ""}}

	if err := Reconcile(context.Background(), txs, rows, sink, false); err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}
	want := []cellUpdate{
		{0, MetaLink, "https://shop.example/order/77"},
		{0, MetaSupplier, "Chairs & Co"},
	}
	if len(sink.updates) != len(want) {
		t.Fatalf("updates = %v, want %v", sink.updates, want)
	}
	for i := range want {
		if sink.updates[i] != want[i] {
			t.Errorf("updates[%d] = %v, want %v", i, sink.updates[i], want[i])
		}
	}
}

func TestReconcile_SecondRunIsNoop(t *testing.T) {
	sink := &mockSink{}
	txs := []Transaction{
		tx("1", "hosting", StatusBooked, map[string]string{MetaLink: "https://l", MetaSupplier: "S"}),
	}
	rows := []Row{{ID: "1", Status: StatusBooked, Link: "https://l", Supplier: "S"}}

	if err := Reconcile(context.Background(), txs, rows, sink, false); err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}
	if len(sink.updates) != 0 {
		t.Errorf("updates = %v, want none on an already reconciled ledger", sink.updates)
	}
}

func TestReconcile_IDMismatchAbortsBeforeWrites(t *testing.T) {
	sink := &mockSink{}
	txs := []Transaction{
		tx("1", "hosting", StatusBooked, nil), // would otherwise trigger an update
		tx("2", "licenses", StatusPending, nil),
	}
	rows := []Row{
		{ID: "1", Status: StatusPending},
		{ID: "9", Status: StatusPending},
	}

	err := Reconcile(context.Background(), txs, rows, sink, false)
	var alignment *AlignmentError
	if !errors.As(err, &alignment) {
		t.Fatalf("error = %v, want *AlignmentError", err)
	}
	if alignment.Index != 1 || alignment.TransactionID != "2" || alignment.RowID != "9" {
		t.Errorf("unexpected alignment detail: %+v", alignment)
	}
	if len(sink.updates) != 0 {
		t.Errorf("updates = %v, want none before alignment check passes", sink.updates)
	}
}

func TestReconcile_MissingIDsDoNotMisalign(t *testing.T) {
	sink := &mockSink{}
	txs := []Transaction{tx("", "hosting", StatusPending, nil)}
	rows := []Row{{ID: "17", Status: StatusPending}}

	if err := Reconcile(context.Background(), txs, rows, sink, false); err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}
}

func TestReconcile_PrivateTransactionNeedsManualReview(t *testing.T) {
	sink := &mockSink{}
	txs := []Transaction{
		tx("1", "hosting", StatusPending, nil),
		tx("2", "privater einkauf", StatusPending, nil),
	}
	rows := []Row{{ID: "1"}, {ID: "2"}}

	err := Reconcile(context.Background(), txs, rows, sink, false)
	var review *ManualReviewError
	if !errors.As(err, &review) {
		t.Fatalf("error = %v, want *ManualReviewError", err)
	}
	if review.Index != 1 {
		t.Errorf("Index = %d, want 1", review.Index)
	}
	if len(sink.updates) != 0 || len(sink.appended) != 0 {
		t.Error("no writes may happen when a transaction needs manual review")
	}
}

func TestReconcile_DryRunWritesNothing(t *testing.T) {
	sink := &mockSink{}
	txs := []Transaction{tx("1", "hosting", StatusBooked, map[string]string{MetaLink: "https://l"})}
	rows := []Row{{ID: "1", Status: StatusPending}}

	if err := Reconcile(context.Background(), txs, rows, sink, true); err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}
	if len(sink.updates) != 0 {
		t.Errorf("updates = %v, want none in dry run", sink.updates)
	}

	if err := Reconcile(context.Background(), txs, nil, sink, true); err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}
	if len(sink.appended) != 0 {
		t.Errorf("appended = %v, want none in dry run", sink.appended)
	}
}

func TestReconcile_LedgerStatusAnnotatesTransaction(t *testing.T) {
	sink := &mockSink{}
	txs := []Transaction{tx("1", "hosting", "", nil)}
	rows := []Row{{ID: "1", Status: StatusBooked}}

	if err := Reconcile(context.Background(), txs, rows, sink, false); err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}
	if got := txs[0].Meta[MetaStatus]; got != StatusBooked {
		t.Errorf("transaction status = %q, want %q from ledger", got, StatusBooked)
	}
}
