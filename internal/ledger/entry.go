package ledger

import (
	"math"

	"github.com/rgavilanes/contable/internal/errs"
)

// Line is a derived posting line before ids are assigned. Amount carries the
// full posted value; tax is never folded into a line but posted as its own
// line against the well-known tax accounts, so IVA stays zero and Total equals
// Amount.
type Line struct {
	Account     Account
	Side        Side
	Amount      float64
	IVA         float64
	Total       float64
	Description string
}

// TaxLineDescription prefixes the entry description for derived tax lines.
func TaxLineDescription(description string) string {
	return "IVA de: " + description
}

// BuildEntryLines derives the balanced line set for a posting between two
// postable accounts. The shape depends on the pair:
//
//   - one account is revenue (code prefix "4"): the counter-account is debited
//     for base+tax, the revenue account credited for base, and with applyTax a
//     third line credits TaxPayableCode for the tax;
//   - one account is expense (prefix "5"): the expense account is debited for
//     base, with applyTax TaxReceivableCode is debited for the tax, and the
//     counter-account credited for base+tax;
//   - otherwise a plain transfer of base; tax does not apply.
//
// A revenue account wins when the pair contains both a revenue and an expense
// account. Lines with non-positive totals are dropped, and the surviving set
// must balance within EntryTolerance or nothing is returned.
func BuildEntryLines(catalog []Account, debitCode, creditCode string, base float64, applyTax bool, rate float64, description string) ([]Line, error) {
	if base <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if debitCode == creditCode {
		return nil, errs.ErrSameAccount
	}
	debitAcc, ok := FindAccount(catalog, debitCode)
	if !ok {
		return nil, errs.ErrNotFound
	}
	creditAcc, ok := FindAccount(catalog, creditCode)
	if !ok {
		return nil, errs.ErrNotFound
	}
	if !Postable(debitAcc.Code) || !Postable(creditAcc.Code) {
		return nil, errs.ErrNotPostable
	}

	tax := 0.0
	if applyTax {
		tax = base * rate
	}
	total := base + tax

	var revenue, expense *Account
	switch {
	case ClassOf(debitAcc.Code) == ClassRevenue:
		revenue = &debitAcc
	case ClassOf(creditAcc.Code) == ClassRevenue:
		revenue = &creditAcc
	}
	if revenue == nil {
		switch {
		case ClassOf(debitAcc.Code) == ClassExpense:
			expense = &debitAcc
		case ClassOf(creditAcc.Code) == ClassExpense:
			expense = &creditAcc
		}
	}

	lines := make([]Line, 0, 3)
	push := func(acc Account, side Side, value float64, desc string) {
		lines = append(lines, Line{Account: acc, Side: side, Amount: value, IVA: 0, Total: value, Description: desc})
	}

	switch {
	case revenue != nil:
		counter := creditAcc
		if revenue.Code == creditAcc.Code {
			counter = debitAcc
		}
		push(counter, SideDebit, total, description)
		push(*revenue, SideCredit, base, description)
		if applyTax {
			taxAcc, ok := FindAccount(catalog, TaxPayableCode)
			if !ok {
				return nil, errs.ErrMissingTaxAccount
			}
			push(taxAcc, SideCredit, tax, TaxLineDescription(description))
		}
	case expense != nil:
		counter := creditAcc
		if expense.Code == creditAcc.Code {
			counter = debitAcc
		}
		push(*expense, SideDebit, base, description)
		if applyTax {
			taxAcc, ok := FindAccount(catalog, TaxReceivableCode)
			if !ok {
				return nil, errs.ErrMissingTaxAccount
			}
			push(taxAcc, SideDebit, tax, TaxLineDescription(description))
		}
		push(counter, SideCredit, total, description)
	default:
		// Generic transfer; tax does not apply outside revenue/expense flows.
		push(debitAcc, SideDebit, base, description)
		push(creditAcc, SideCredit, base, description)
	}

	kept := lines[:0]
	var debits, credits float64
	for _, ln := range lines {
		if ln.Total <= 0 {
			continue
		}
		if ln.Side == SideDebit {
			debits += ln.Total
		} else {
			credits += ln.Total
		}
		kept = append(kept, ln)
	}
	if len(kept) == 0 || debits <= 0 || math.Abs(debits-credits) > EntryTolerance {
		return nil, errs.ErrUnbalancedEntry
	}
	return kept, nil
}
