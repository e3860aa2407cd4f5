package ledger

import (
	"sort"
	"strings"
)

// Well-known account codes the tax flows post against.
const (
	// TaxPayableCode is credited with output tax on revenue entries (IVA Débito Fiscal).
	TaxPayableCode = "2103.01"
	// TaxReceivableCode is debited with input tax on expense entries (IVA Crédito Fiscal).
	TaxReceivableCode = "1103"
)

// DefaultTaxRate is the IVA fraction applied to base amounts unless overridden.
const DefaultTaxRate = 0.13

// Balance comparison tolerances. Amounts are binary floats, so "equal" means
// within a band: tight for a single entry, looser for statement tie-outs that
// accumulate rounding across the whole ledger.
const (
	EntryTolerance  = 0.001
	ReportTolerance = 0.01
)

// Postable reports whether transactions may reference the code directly.
// Length-4 codes are leaf accounts; dotted codes are sub-leaves. Shorter codes
// are aggregation parents.
func Postable(code string) bool {
	return len(code) >= 4 || strings.Contains(code, ".")
}

// IsParentOf reports whether parent aggregates child: child's code starts with
// parent's and the two differ.
func IsParentOf(parent, child string) bool {
	return parent != child && strings.HasPrefix(child, parent)
}

// ClassOf classifies a code by its leading digit.
func ClassOf(code string) Class {
	if code == "" {
		return ClassOther
	}
	switch code[0] {
	case '1':
		return ClassAsset
	case '2':
		return ClassLiability
	case '3':
		return ClassEquity
	case '4':
		return ClassRevenue
	case '5':
		return ClassExpense
	default:
		return ClassOther
	}
}

// DebitNormal reports whether a debit increases the account's balance.
// Assets, expenses and class 6 carry debit-normal balances; everything else is
// credit-normal.
func DebitNormal(code string) bool {
	if code == "" {
		return false
	}
	switch code[0] {
	case '1', '5', '6':
		return true
	}
	return false
}

// SortAccounts returns a copy ordered by code, lexicographically. String order
// is deliberate: "10" sorts before "2", matching the catalog display order.
func SortAccounts(accounts []Account) []Account {
	out := make([]Account, len(accounts))
	copy(out, accounts)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// PostableAccounts filters the catalog down to accounts transactions may use.
func PostableAccounts(accounts []Account) []Account {
	out := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		if Postable(a.Code) {
			out = append(out, a)
		}
	}
	return out
}

// FindAccount locates an account by code.
func FindAccount(accounts []Account, code string) (Account, bool) {
	for _, a := range accounts {
		if a.Code == code {
			return a, true
		}
	}
	return Account{}, false
}
