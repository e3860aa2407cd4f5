package reports

import (
	"context"
	"math"
	"testing"

	"github.com/rgavilanes/contable/internal/chart"
	"github.com/rgavilanes/contable/internal/ledger"
	"github.com/rgavilanes/contable/internal/service/journal"
	"github.com/rgavilanes/contable/internal/storage/memory"
)

// postScenario posts a capital contribution, a taxed sale and a taxed expense.
func postScenario(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.New()
	store.SeedAccounts(chart.Default())
	jsvc := journal.New(store, store, 0.13)
	ctx := context.Background()
	for _, in := range []journal.EntryInput{
		{Date: "2025-01-01", Description: "Aporte de capital", DebitCode: "1101", CreditCode: "3101", Base: 1000},
		{Date: "2025-01-10", Description: "Venta", DebitCode: "1101", CreditCode: "4101", Base: 100, ApplyTax: true},
		{Date: "2025-01-20", Description: "Papelería", DebitCode: "5101", CreditCode: "1101", Base: 200, ApplyTax: true},
	} {
		if _, err := jsvc.CreateEntry(ctx, in); err != nil {
			t.Fatalf("create %q: %v", in.Description, err)
		}
	}
	return store
}

func TestBalanceSheet(t *testing.T) {
	svc := New(postScenario(t))
	bs, err := svc.BalanceSheet(context.Background())
	if err != nil {
		t.Fatalf("balance sheet: %v", err)
	}
	if !bs.Balanced() {
		t.Fatalf("balance sheet does not tie out: check=%v", bs.Check)
	}
	if math.Abs(bs.TotalAssets-bs.TotalEquityAndLiabilities) > ledger.ReportTolerance {
		t.Fatalf("assets %v vs equity+liabilities %v", bs.TotalAssets, bs.TotalEquityAndLiabilities)
	}
	// Zero-balance rows are hidden in the sheet view.
	for _, a := range bs.Assets {
		if a.Balance == 0 {
			t.Fatalf("zero-balance row shown: %+v", a)
		}
	}
}

func TestIncomeStatement(t *testing.T) {
	svc := New(postScenario(t))
	is, err := svc.IncomeStatement(context.Background())
	if err != nil {
		t.Fatalf("income statement: %v", err)
	}
	if math.Abs(is.TotalRevenues-100) > 1e-9 || math.Abs(is.TotalExpenses-200) > 1e-9 {
		t.Fatalf("totals: %+v", is)
	}
	if math.Abs(is.NetIncome-(-100)) > 1e-9 {
		t.Fatalf("net income %v, want -100", is.NetIncome)
	}
}

func TestStatementOfCapital(t *testing.T) {
	svc := New(postScenario(t))
	sc, err := svc.StatementOfCapital(context.Background())
	if err != nil {
		t.Fatalf("statement of capital: %v", err)
	}
	if math.Abs(sc.InitialCapital-1000) > 1e-9 {
		t.Fatalf("initial capital %v", sc.InitialCapital)
	}
	if math.Abs(sc.FinalCapital-900) > 1e-9 {
		t.Fatalf("final capital %v, want 900", sc.FinalCapital)
	}
}
