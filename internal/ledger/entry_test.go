package ledger

import (
	"errors"
	"math"
	"testing"

	"github.com/rgavilanes/contable/internal/errs"
)

func testCatalog() []Account {
	return []Account{
		{Code: "1101", Name: "Caja"},
		{Code: "1103", Name: "IVA Crédito Fiscal"},
		{Code: "2101", Name: "Cuentas por Pagar"},
		{Code: "2103.01", Name: "IVA Débito Fiscal"},
		{Code: "3101", Name: "Capital Social"},
		{Code: "4101", Name: "Ventas"},
		{Code: "5101", Name: "Gastos de Administración"},
		{Code: "1", Name: "Activos"},
	}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBuildEntryLines_RevenueWithTax(t *testing.T) {
	lines, err := BuildEntryLines(testCatalog(), "1101", "4101", 100, true, 0.13, "Venta del día")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	// Counter-account carries base plus tax on the debit side.
	if lines[0].Account.Code != "1101" || lines[0].Side != SideDebit || !approx(lines[0].Total, 113) {
		t.Fatalf("unexpected counter line: %+v", lines[0])
	}
	// Revenue is credited for the base only.
	if lines[1].Account.Code != "4101" || lines[1].Side != SideCredit || !approx(lines[1].Total, 100) {
		t.Fatalf("unexpected revenue line: %+v", lines[1])
	}
	// Tax goes to the payable account as its own credit line.
	if lines[2].Account.Code != TaxPayableCode || lines[2].Side != SideCredit || !approx(lines[2].Total, 13) {
		t.Fatalf("unexpected tax line: %+v", lines[2])
	}
	if lines[2].Description != "IVA de: Venta del día" {
		t.Fatalf("unexpected tax description: %q", lines[2].Description)
	}
	// Tax is never folded into a line.
	for i, ln := range lines {
		if ln.IVA != 0 || !approx(ln.Total, ln.Amount) {
			t.Fatalf("line %d carries folded tax: %+v", i, ln)
		}
	}
}

func TestBuildEntryLines_RevenueWinsOverSideChoice(t *testing.T) {
	// Revenue named on the debit side still ends up credited; the other account
	// becomes the counter-account.
	lines, err := BuildEntryLines(testCatalog(), "4101", "1101", 100, false, 0.13, "Venta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Account.Code != "1101" || lines[0].Side != SideDebit {
		t.Fatalf("unexpected counter line: %+v", lines[0])
	}
	if lines[1].Account.Code != "4101" || lines[1].Side != SideCredit {
		t.Fatalf("unexpected revenue line: %+v", lines[1])
	}
}

func TestBuildEntryLines_ExpenseWithTax(t *testing.T) {
	lines, err := BuildEntryLines(testCatalog(), "5101", "1101", 200, true, 0.13, "Papelería")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0].Account.Code != "5101" || lines[0].Side != SideDebit || !approx(lines[0].Total, 200) {
		t.Fatalf("unexpected expense line: %+v", lines[0])
	}
	if lines[1].Account.Code != TaxReceivableCode || lines[1].Side != SideDebit || !approx(lines[1].Total, 26) {
		t.Fatalf("unexpected tax line: %+v", lines[1])
	}
	if lines[2].Account.Code != "1101" || lines[2].Side != SideCredit || !approx(lines[2].Total, 226) {
		t.Fatalf("unexpected counter line: %+v", lines[2])
	}
}

func TestBuildEntryLines_TransferIgnoresTax(t *testing.T) {
	// Neither side is revenue or expense, so applyTax has no effect.
	lines, err := BuildEntryLines(testCatalog(), "1101", "3101", 1000, true, 0.13, "Aporte de capital")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !approx(lines[0].Total, 1000) || !approx(lines[1].Total, 1000) {
		t.Fatalf("transfer applied tax: %+v", lines)
	}
	if lines[0].Side != SideDebit || lines[1].Side != SideCredit {
		t.Fatalf("unexpected sides: %+v", lines)
	}
}

func TestBuildEntryLines_Errors(t *testing.T) {
	catalog := testCatalog()

	if _, err := BuildEntryLines(catalog, "1101", "4101", 0, false, 0.13, "x"); !errors.Is(err, errs.ErrInvalidAmount) {
		t.Fatalf("zero base: got %v", err)
	}
	if _, err := BuildEntryLines(catalog, "1101", "4101", -5, false, 0.13, "x"); !errors.Is(err, errs.ErrInvalidAmount) {
		t.Fatalf("negative base: got %v", err)
	}
	if _, err := BuildEntryLines(catalog, "1101", "1101", 10, false, 0.13, "x"); !errors.Is(err, errs.ErrSameAccount) {
		t.Fatalf("same account: got %v", err)
	}
	if _, err := BuildEntryLines(catalog, "9999", "4101", 10, false, 0.13, "x"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("unknown debit: got %v", err)
	}
	if _, err := BuildEntryLines(catalog, "1101", "9999", 10, false, 0.13, "x"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("unknown credit: got %v", err)
	}
	// "1" is a class header, not postable.
	if _, err := BuildEntryLines(catalog, "1", "4101", 10, false, 0.13, "x"); !errors.Is(err, errs.ErrNotPostable) {
		t.Fatalf("non-postable: got %v", err)
	}
}

func TestBuildEntryLines_MissingTaxAccount(t *testing.T) {
	// Catalog without the well-known tax accounts.
	catalog := []Account{
		{Code: "1101", Name: "Caja"},
		{Code: "4101", Name: "Ventas"},
		{Code: "5101", Name: "Gastos"},
	}
	if _, err := BuildEntryLines(catalog, "1101", "4101", 100, true, 0.13, "x"); !errors.Is(err, errs.ErrMissingTaxAccount) {
		t.Fatalf("revenue without payable account: got %v", err)
	}
	if _, err := BuildEntryLines(catalog, "5101", "1101", 100, true, 0.13, "x"); !errors.Is(err, errs.ErrMissingTaxAccount) {
		t.Fatalf("expense without receivable account: got %v", err)
	}
	// Without tax the same pairs post fine.
	if _, err := BuildEntryLines(catalog, "1101", "4101", 100, false, 0.13, "x"); err != nil {
		t.Fatalf("revenue without tax: %v", err)
	}
}

func TestBuildEntryLines_ZeroRateDropsTaxLine(t *testing.T) {
	// A zero rate produces a zero tax line, which is dropped rather than posted.
	lines, err := BuildEntryLines(testCatalog(), "1101", "4101", 100, true, 0, "Venta exenta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, ln := range lines {
		if ln.Account.Code == TaxPayableCode {
			t.Fatalf("zero tax line survived: %+v", ln)
		}
	}
}

func TestBuildEntryLines_Balance(t *testing.T) {
	for _, base := range []float64{0.01, 1, 99.99, 1234.56, 100000} {
		lines, err := BuildEntryLines(testCatalog(), "5101", "1101", base, true, 0.13, "compra")
		if err != nil {
			t.Fatalf("base %v: %v", base, err)
		}
		var debits, credits float64
		for _, ln := range lines {
			if ln.Side == SideDebit {
				debits += ln.Total
			} else {
				credits += ln.Total
			}
		}
		if math.Abs(debits-credits) > EntryTolerance {
			t.Fatalf("base %v: unbalanced by %v", base, debits-credits)
		}
	}
}
