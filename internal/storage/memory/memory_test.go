package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/rgavilanes/contable/internal/errs"
	"github.com/rgavilanes/contable/internal/ledger"
)

func TestAccountsRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.GetAccount(ctx, "1101"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("empty store: got %v", err)
	}

	a := ledger.Account{Code: "1101", Name: "Caja"}
	if _, err := s.CreateAccount(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := s.GetAccount(ctx, "1101")
	if err != nil || got != a {
		t.Fatalf("get: %+v, %v", got, err)
	}

	if err := s.DeleteAccount(ctx, "1101"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteAccount(ctx, "1101"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("second delete: got %v", err)
	}
}

func TestTransactionsAndEntryLookup(t *testing.T) {
	s := New()
	ctx := context.Background()

	entryID := uuid.New()
	lines := []ledger.Transaction{
		{ID: uuid.New(), EntryID: entryID, Date: "2025-01-01", Account: ledger.Account{Code: "1101", Name: "Caja"}, Description: "Aporte", Side: ledger.SideDebit, Amount: 500, Total: 500},
		{ID: uuid.New(), EntryID: entryID, Date: "2025-01-01", Account: ledger.Account{Code: "3101", Name: "Capital Social"}, Description: "Aporte", Side: ledger.SideCredit, Amount: 500, Total: 500},
	}
	if err := s.CreateTransactions(ctx, lines); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := s.ListTransactions(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("list: %d, %v", len(all), err)
	}
	// The returned slice is a copy.
	all[0].Account.Code = "mutated"
	again, _ := s.ListTransactions(ctx)
	if again[0].Account.Code != "1101" {
		t.Fatal("ListTransactions exposes internal state")
	}

	used, err := s.HasTransactions(ctx, "1101")
	if err != nil || !used {
		t.Fatalf("has: %v, %v", used, err)
	}
	used, _ = s.HasTransactions(ctx, "4101")
	if used {
		t.Fatal("unexpected usage for unposted account")
	}

	e, err := s.EntryByID(ctx, entryID)
	if err != nil {
		t.Fatalf("entry by id: %v", err)
	}
	if e.ID != entryID || len(e.Lines) != 2 || e.Description != "Aporte" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if _, err := s.EntryByID(ctx, uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("missing entry: got %v", err)
	}
}

func TestIdempotencyFirstWriteWins(t *testing.T) {
	s := New()
	ctx := context.Background()

	entryID := uuid.New()
	if err := s.CreateTransactions(ctx, []ledger.Transaction{
		{ID: uuid.New(), EntryID: entryID, Date: "2025-01-01", Account: ledger.Account{Code: "1101"}, Side: ledger.SideDebit, Amount: 1, Total: 1},
		{ID: uuid.New(), EntryID: entryID, Date: "2025-01-01", Account: ledger.Account{Code: "3101"}, Side: ledger.SideCredit, Amount: 1, Total: 1},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, ok, _ := s.GetEntryByIdempotencyKey(ctx, "k"); ok {
		t.Fatal("unexpected idempotency hit")
	}
	if err := s.SaveIdempotencyKey(ctx, "k", entryID); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveIdempotencyKey(ctx, "k", uuid.New()); err != nil {
		t.Fatalf("save again: %v", err)
	}
	e, ok, err := s.GetEntryByIdempotencyKey(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("hit: %v, %v", ok, err)
	}
	if e.ID != entryID {
		t.Fatal("first write did not win")
	}
}

func TestConcurrentWrites(t *testing.T) {
	s := New()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entryID := uuid.New()
			_ = s.CreateTransactions(ctx, []ledger.Transaction{
				{ID: uuid.New(), EntryID: entryID, Date: "2025-01-01", Account: ledger.Account{Code: "1101"}, Side: ledger.SideDebit, Amount: 1, Total: 1},
				{ID: uuid.New(), EntryID: entryID, Date: "2025-01-01", Account: ledger.Account{Code: "3101"}, Side: ledger.SideCredit, Amount: 1, Total: 1},
			})
		}()
	}
	wg.Wait()
	all, _ := s.ListTransactions(ctx)
	if len(all) != 100 {
		t.Fatalf("got %d transactions, want 100", len(all))
	}
}
