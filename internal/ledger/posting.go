package ledger

import "sort"

// Filter narrows the transaction set before grouping. Dates are ISO strings
// compared lexicographically; both bounds are inclusive. Zero values match
// everything.
type Filter struct {
	StartDate   string
	EndDate     string
	AccountCode string
}

// Match reports whether the transaction survives the filter.
func (f Filter) Match(t Transaction) bool {
	if f.StartDate != "" && t.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && t.Date > f.EndDate {
		return false
	}
	if f.AccountCode != "" && t.Account.Code != f.AccountCode {
		return false
	}
	return true
}

// Apply returns the transactions matching the filter, in input order. The
// input slice is never mutated.
func (f Filter) Apply(txs []Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// LedgerEntry pairs a transaction with the account balance after posting it.
type LedgerEntry struct {
	Transaction Transaction
	Balance     float64
}

// LedgerAccount is one account's section of the general ledger.
type LedgerAccount struct {
	Account      Account
	Entries      []LedgerEntry
	FinalBalance float64
	TotalDebits  float64
	TotalCredits float64
}

// GeneralLedger groups the filtered transactions by account and computes the
// running balance per account, honoring the account's normal-balance side.
// Each account's lines are processed in (date, id) ascending order; accounts
// with no surviving transactions are omitted. Debit and credit totals are raw
// posted sums, never sign-flipped.
func GeneralLedger(txs []Transaction, f Filter) []LedgerAccount {
	grouped := make(map[string][]Transaction)
	for _, t := range f.Apply(txs) {
		grouped[t.Account.Code] = append(grouped[t.Account.Code], t)
	}

	out := make([]LedgerAccount, 0, len(grouped))
	for _, group := range grouped {
		sort.Slice(group, func(i, j int) bool {
			if group[i].Date != group[j].Date {
				return group[i].Date < group[j].Date
			}
			return group[i].ID.String() < group[j].ID.String()
		})

		acc := group[0].Account
		debitNormal := DebitNormal(acc.Code)
		la := LedgerAccount{Account: acc, Entries: make([]LedgerEntry, 0, len(group))}
		var balance float64
		for _, t := range group {
			signed := t.Total
			if !debitNormal {
				signed = -t.Total
			}
			if t.Side == SideDebit {
				balance += signed
				la.TotalDebits += t.Total
			} else {
				balance -= signed
				la.TotalCredits += t.Total
			}
			la.Entries = append(la.Entries, LedgerEntry{Transaction: t, Balance: balance})
		}
		la.FinalBalance = balance
		out = append(out, la)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Account.Code < out[j].Account.Code })
	return out
}

// TrialBalanceRow holds one account's raw posted totals.
type TrialBalanceRow struct {
	Code         string
	Name         string
	TotalDebits  float64
	TotalCredits float64
}

// TrialBalance sums raw debits and credits per posted account, ordered by
// code. No normal-balance sign convention applies; the grand totals must be
// equal for a balanced book regardless of account classification.
func TrialBalance(txs []Transaction, f Filter) []TrialBalanceRow {
	rows := make(map[string]*TrialBalanceRow)
	for _, t := range f.Apply(txs) {
		row, ok := rows[t.Account.Code]
		if !ok {
			row = &TrialBalanceRow{Code: t.Account.Code, Name: t.Account.Name}
			rows[t.Account.Code] = row
		}
		if t.Side == SideDebit {
			row.TotalDebits += t.Total
		} else {
			row.TotalCredits += t.Total
		}
	}
	out := make([]TrialBalanceRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// TrialBalanceTotals sums the rows' debit and credit columns.
func TrialBalanceTotals(rows []TrialBalanceRow) (debits, credits float64) {
	for _, r := range rows {
		debits += r.TotalDebits
		credits += r.TotalCredits
	}
	return debits, credits
}
