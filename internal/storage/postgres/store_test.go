package postgres

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/rgavilanes/contable/internal/errs"
	"github.com/rgavilanes/contable/internal/ledger"
)

// newTestStore connects to the database named by TEST_DATABASE_URL, applies
// the migration and truncates all tables so each test starts clean. Tests are
// skipped when the variable is unset.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	st, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(st.Close)

	sql, err := os.ReadFile(filepath.Join("..", "..", "..", "db", "migrations", "0001_init.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if _, err := st.pool.Exec(ctx, string(sql)); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if _, err := st.pool.Exec(ctx, `truncate accounts, transactions, entry_idempotency`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return st
}

func TestStore_AccountsRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a := ledger.Account{Code: "1101", Name: "Caja"}
	if _, err := st.CreateAccount(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := st.GetAccount(ctx, "1101")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != a {
		t.Fatalf("got %+v want %+v", got, a)
	}

	if _, err := st.GetAccount(ctx, "9999"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := st.DeleteAccount(ctx, "1101"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := st.DeleteAccount(ctx, "1101"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStore_TransactionsAndEntries(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	entryID := uuid.New()
	lines := []ledger.Transaction{
		{ID: uuid.New(), EntryID: entryID, Seq: 0, Date: "2025-01-15", Account: ledger.Account{Code: "1101", Name: "Caja"}, Description: "Venta", Side: ledger.SideDebit, Amount: 113, Total: 113},
		{ID: uuid.New(), EntryID: entryID, Seq: 1, Date: "2025-01-15", Account: ledger.Account{Code: "4101", Name: "Ventas"}, Description: "Venta", Side: ledger.SideCredit, Amount: 100, Total: 100},
		{ID: uuid.New(), EntryID: entryID, Seq: 2, Date: "2025-01-15", Account: ledger.Account{Code: "2103.01", Name: "IVA Débito Fiscal"}, Description: "IVA de: Venta", Side: ledger.SideCredit, Amount: 13, Total: 13},
	}
	if err := st.CreateTransactions(ctx, lines); err != nil {
		t.Fatalf("create transactions: %v", err)
	}

	all, err := st.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d transactions, want 3", len(all))
	}

	used, err := st.HasTransactions(ctx, "1101")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if !used {
		t.Fatal("expected 1101 to have transactions")
	}
	used, err = st.HasTransactions(ctx, "5101")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if used {
		t.Fatal("expected 5101 to have no transactions")
	}

	e, err := st.EntryByID(ctx, entryID)
	if err != nil {
		t.Fatalf("entry by id: %v", err)
	}
	if len(e.Lines) != 3 || e.Date != "2025-01-15" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	for i, ln := range e.Lines {
		if ln.Seq != i {
			t.Fatalf("line %d out of order, seq %d", i, ln.Seq)
		}
	}
	if e.Description != "Venta" {
		t.Fatalf("got entry description %q, want %q", e.Description, "Venta")
	}

	if _, err := st.EntryByID(ctx, uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_IdempotencyKeys(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	entryID := uuid.New()
	lines := []ledger.Transaction{
		{ID: uuid.New(), EntryID: entryID, Seq: 0, Date: "2025-02-01", Account: ledger.Account{Code: "1101", Name: "Caja"}, Description: "Aporte", Side: ledger.SideDebit, Amount: 500, Total: 500},
		{ID: uuid.New(), EntryID: entryID, Seq: 1, Date: "2025-02-01", Account: ledger.Account{Code: "3101", Name: "Capital Social"}, Description: "Aporte", Side: ledger.SideCredit, Amount: 500, Total: 500},
	}
	if err := st.CreateTransactions(ctx, lines); err != nil {
		t.Fatalf("create transactions: %v", err)
	}

	if _, ok, err := st.GetEntryByIdempotencyKey(ctx, "key-1"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := st.SaveIdempotencyKey(ctx, "key-1", entryID); err != nil {
		t.Fatalf("save key: %v", err)
	}
	e, ok, err := st.GetEntryByIdempotencyKey(ctx, "key-1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if e.ID != entryID || len(e.Lines) != 2 {
		t.Fatalf("unexpected entry: %+v", e)
	}

	// First write wins.
	other := uuid.New()
	if err := st.SaveIdempotencyKey(ctx, "key-1", other); err != nil {
		t.Fatalf("save key again: %v", err)
	}
	e, _, err = st.GetEntryByIdempotencyKey(ctx, "key-1")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if e.ID != entryID {
		t.Fatalf("idempotency key was overwritten: %v", e.ID)
	}
}

func TestStore_SeedDev(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	accs, err := st.SeedDev(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(accs) == 0 {
		t.Fatal("expected seeded accounts")
	}
	// Seeding twice must not error or duplicate.
	if _, err := st.SeedDev(ctx); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	all, err := st.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != len(accs) {
		t.Fatalf("got %d accounts, want %d", len(all), len(accs))
	}
}
