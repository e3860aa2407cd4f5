package httpapi

import (
	"math"

	"github.com/google/uuid"
	"github.com/govalues/money"

	"github.com/rgavilanes/contable/internal/ledger"
)

type postAccountRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type accountResponse struct {
	Code      string       `json:"code"`
	Name      string       `json:"name"`
	Class     ledger.Class `json:"class"`
	Postable  bool         `json:"postable"`
	Deletable bool         `json:"deletable"`
}

type postEntryRequest struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	DebitCode   string  `json:"debit_code"`
	CreditCode  string  `json:"credit_code"`
	Base        float64 `json:"base"`
	ApplyTax    bool    `json:"apply_tax"`
}

type lineResponse struct {
	AccountCode  string      `json:"account_code"`
	AccountName  string      `json:"account_name"`
	Side         ledger.Side `json:"side"`
	Amount       float64     `json:"amount"`
	IVA          float64     `json:"iva"`
	Total        float64     `json:"total"`
	TotalMinor   int64       `json:"total_minor"`
	TotalDisplay string      `json:"total_display"`
	Description  string      `json:"description"`
}

type previewResponse struct {
	Lines        []lineResponse `json:"lines"`
	TotalDebits  float64        `json:"total_debits"`
	TotalCredits float64        `json:"total_credits"`
}

type txResponse struct {
	ID           uuid.UUID   `json:"id"`
	EntryID      uuid.UUID   `json:"entry_id"`
	Date         string      `json:"date"`
	AccountCode  string      `json:"account_code"`
	AccountName  string      `json:"account_name"`
	Description  string      `json:"description"`
	Side         ledger.Side `json:"side"`
	Amount       float64     `json:"amount"`
	IVA          float64     `json:"iva"`
	Total        float64     `json:"total"`
	TotalMinor   int64       `json:"total_minor"`
	TotalDisplay string      `json:"total_display"`
}

type entryResponse struct {
	ID          uuid.UUID    `json:"id"`
	Date        string       `json:"date"`
	Description string       `json:"description"`
	Lines       []txResponse `json:"lines"`
}

type ledgerEntryResponse struct {
	Transaction txResponse `json:"transaction"`
	Balance     float64    `json:"balance"`
}

type ledgerAccountResponse struct {
	Account      accountResponse       `json:"account"`
	Entries      []ledgerEntryResponse `json:"entries"`
	FinalBalance float64               `json:"final_balance"`
	TotalDebits  float64               `json:"total_debits"`
	TotalCredits float64               `json:"total_credits"`
}

type trialBalanceRowResponse struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	TotalDebits  float64 `json:"total_debits"`
	TotalCredits float64 `json:"total_credits"`
}

type trialBalanceResponse struct {
	Rows         []trialBalanceRowResponse `json:"rows"`
	TotalDebits  float64                   `json:"total_debits"`
	TotalCredits float64                   `json:"total_credits"`
}

type reportAccountResponse struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Parent  bool    `json:"parent"`
}

type balanceSheetResponse struct {
	Assets      []reportAccountResponse `json:"assets"`
	Liabilities []reportAccountResponse `json:"liabilities"`
	Equity      []reportAccountResponse `json:"equity"`

	TotalAssets               float64 `json:"total_assets"`
	TotalLiabilities          float64 `json:"total_liabilities"`
	TotalEquity               float64 `json:"total_equity"`
	NetIncome                 float64 `json:"net_income"`
	TotalEquityAndLiabilities float64 `json:"total_equity_and_liabilities"`
	Balanced                  bool    `json:"balanced"`
}

type incomeStatementResponse struct {
	Revenues []reportAccountResponse `json:"revenues"`
	Expenses []reportAccountResponse `json:"expenses"`

	TotalRevenues float64 `json:"total_revenues"`
	TotalExpenses float64 `json:"total_expenses"`
	NetIncome     float64 `json:"net_income"`
}

type statementOfCapitalResponse struct {
	Equity []reportAccountResponse `json:"equity"`

	InitialCapital float64 `json:"initial_capital"`
	NetIncome      float64 `json:"net_income"`
	FinalCapital   float64 `json:"final_capital"`
}

// display renders an amount in minor units plus a formatted string in the
// server currency. Formatting failures fall back to an empty display string.
func (s *Server) display(v float64) (int64, string) {
	minor := int64(math.Round(v * 100))
	amt, err := money.NewAmountFromMinorUnits(s.currency, minor)
	if err != nil {
		return minor, ""
	}
	return minor, amt.String()
}

func (s *Server) toLineResponse(l ledger.Line) lineResponse {
	minor, disp := s.display(l.Total)
	return lineResponse{
		AccountCode:  l.Account.Code,
		AccountName:  l.Account.Name,
		Side:         l.Side,
		Amount:       l.Amount,
		IVA:          l.IVA,
		Total:        l.Total,
		TotalMinor:   minor,
		TotalDisplay: disp,
		Description:  l.Description,
	}
}

func (s *Server) toTxResponse(t ledger.Transaction) txResponse {
	minor, disp := s.display(t.Total)
	return txResponse{
		ID:           t.ID,
		EntryID:      t.EntryID,
		Date:         t.Date,
		AccountCode:  t.Account.Code,
		AccountName:  t.Account.Name,
		Description:  t.Description,
		Side:         t.Side,
		Amount:       t.Amount,
		IVA:          t.IVA,
		Total:        t.Total,
		TotalMinor:   minor,
		TotalDisplay: disp,
	}
}

func (s *Server) toEntryResponse(e ledger.JournalEntry) entryResponse {
	lines := make([]txResponse, 0, len(e.Lines))
	for _, t := range e.Lines {
		lines = append(lines, s.toTxResponse(t))
	}
	return entryResponse{ID: e.ID, Date: e.Date, Description: e.Description, Lines: lines}
}

func toReportAccounts(rows []ledger.ReportAccount) []reportAccountResponse {
	out := make([]reportAccountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, reportAccountResponse{Code: r.Code, Name: r.Name, Balance: r.Balance, Parent: r.Parent})
	}
	return out
}
