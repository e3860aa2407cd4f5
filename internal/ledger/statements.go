package ledger

import "math"

// ReportAccount is one row of a financial statement.
type ReportAccount struct {
	Code    string
	Name    string
	Balance float64
	// Parent marks aggregation rows whose balance is rolled up from postable
	// descendants; parents never contribute to section totals.
	Parent bool
}

// Report holds the classified account balances every statement draws from.
type Report struct {
	Assets      []ReportAccount
	Liabilities []ReportAccount
	Equity      []ReportAccount
	Revenues    []ReportAccount
	Expenses    []ReportAccount

	TotalAssets      float64
	TotalLiabilities float64
	TotalEquity      float64
	TotalRevenues    float64
	TotalExpenses    float64

	NetIncome                 float64
	TotalEquityAndLiabilities float64
}

// BuildReport computes postable balances over the full history and rolls them
// up into parent rows by code prefix. The rollup is a string-prefix match, not
// a tree walk: a parent "1" absorbs every postable code starting with "1",
// including codes like "10xx" that the length-based scheme would not consider
// true children. Zero-balance parents are suppressed; postable rows are kept
// regardless of balance. Codes with a leading digit outside 1..5 are excluded
// from all statements.
func BuildReport(accounts []Account, txs []Transaction) Report {
	balances := make(map[string]float64)
	for _, la := range GeneralLedger(txs, Filter{}) {
		if Postable(la.Account.Code) {
			balances[la.Account.Code] = la.FinalBalance
		}
	}

	var r Report
	for _, acc := range SortAccounts(accounts) {
		parent := !Postable(acc.Code)
		var balance float64
		if parent {
			for code, b := range balances {
				if len(code) >= len(acc.Code) && code[:len(acc.Code)] == acc.Code {
					balance += b
				}
			}
			if balance == 0 {
				continue
			}
		} else {
			balance = balances[acc.Code]
		}

		row := ReportAccount{Code: acc.Code, Name: acc.Name, Balance: balance, Parent: parent}
		switch ClassOf(acc.Code) {
		case ClassAsset:
			r.Assets = append(r.Assets, row)
			if !parent {
				r.TotalAssets += balance
			}
		case ClassLiability:
			r.Liabilities = append(r.Liabilities, row)
			if !parent {
				r.TotalLiabilities += balance
			}
		case ClassEquity:
			r.Equity = append(r.Equity, row)
			if !parent {
				r.TotalEquity += balance
			}
		case ClassRevenue:
			r.Revenues = append(r.Revenues, row)
			if !parent {
				r.TotalRevenues += balance
			}
		case ClassExpense:
			r.Expenses = append(r.Expenses, row)
			if !parent {
				r.TotalExpenses += balance
			}
		}
	}

	r.NetIncome = r.TotalRevenues - r.TotalExpenses
	r.TotalEquityAndLiabilities = r.TotalLiabilities + r.TotalEquity + r.NetIncome
	return r
}

// BalanceSheet presents assets against liabilities, equity and the period's
// result.
type BalanceSheet struct {
	Assets      []ReportAccount
	Liabilities []ReportAccount
	Equity      []ReportAccount

	TotalAssets               float64
	TotalLiabilities          float64
	TotalEquity               float64
	NetIncome                 float64
	TotalEquityAndLiabilities float64
	// Check is assets minus equity-and-liabilities; ~0 for balanced books.
	Check float64
}

// Balanced reports whether the sheet ties out within ReportTolerance.
func (b BalanceSheet) Balanced() bool { return math.Abs(b.Check) <= ReportTolerance }

// BalanceSheet derives the balance sheet view, hiding zero-balance rows.
func (r Report) BalanceSheet() BalanceSheet {
	return BalanceSheet{
		Assets:                    nonZero(r.Assets),
		Liabilities:               nonZero(r.Liabilities),
		Equity:                    nonZero(r.Equity),
		TotalAssets:               r.TotalAssets,
		TotalLiabilities:          r.TotalLiabilities,
		TotalEquity:               r.TotalEquity,
		NetIncome:                 r.NetIncome,
		TotalEquityAndLiabilities: r.TotalEquityAndLiabilities,
		Check:                     r.TotalAssets - r.TotalEquityAndLiabilities,
	}
}

// IncomeStatement presents revenues against expenses.
type IncomeStatement struct {
	Revenues []ReportAccount
	Expenses []ReportAccount

	TotalRevenues float64
	TotalExpenses float64
	NetIncome     float64
}

// IncomeStatement derives the income statement view, hiding zero-balance rows.
func (r Report) IncomeStatement() IncomeStatement {
	return IncomeStatement{
		Revenues:      nonZero(r.Revenues),
		Expenses:      nonZero(r.Expenses),
		TotalRevenues: r.TotalRevenues,
		TotalExpenses: r.TotalExpenses,
		NetIncome:     r.NetIncome,
	}
}

// StatementOfCapital reconciles opening equity with the period's result.
type StatementOfCapital struct {
	Equity []ReportAccount

	InitialCapital float64
	NetIncome      float64
	FinalCapital   float64
}

// StatementOfCapital derives the capital statement. Only postable equity rows
// with a balance appear; parents are aggregation artifacts here.
func (r Report) StatementOfCapital() StatementOfCapital {
	rows := make([]ReportAccount, 0, len(r.Equity))
	for _, a := range r.Equity {
		if !a.Parent && a.Balance != 0 {
			rows = append(rows, a)
		}
	}
	return StatementOfCapital{
		Equity:         rows,
		InitialCapital: r.TotalEquity,
		NetIncome:      r.NetIncome,
		FinalCapital:   r.TotalEquity + r.NetIncome,
	}
}

func nonZero(rows []ReportAccount) []ReportAccount {
	out := make([]ReportAccount, 0, len(rows))
	for _, a := range rows {
		if a.Balance != 0 {
			out = append(out, a)
		}
	}
	return out
}
