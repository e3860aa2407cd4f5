package httpapi

import "net/http"

func (s *Server) getBalanceSheet(w http.ResponseWriter, r *http.Request) {
	bs, err := s.reportsSvc.BalanceSheet(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	toJSON(w, http.StatusOK, balanceSheetResponse{
		Assets:                    toReportAccounts(bs.Assets),
		Liabilities:               toReportAccounts(bs.Liabilities),
		Equity:                    toReportAccounts(bs.Equity),
		TotalAssets:               bs.TotalAssets,
		TotalLiabilities:          bs.TotalLiabilities,
		TotalEquity:               bs.TotalEquity,
		NetIncome:                 bs.NetIncome,
		TotalEquityAndLiabilities: bs.TotalEquityAndLiabilities,
		Balanced:                  bs.Balanced(),
	})
}

func (s *Server) getIncomeStatement(w http.ResponseWriter, r *http.Request) {
	is, err := s.reportsSvc.IncomeStatement(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	toJSON(w, http.StatusOK, incomeStatementResponse{
		Revenues:      toReportAccounts(is.Revenues),
		Expenses:      toReportAccounts(is.Expenses),
		TotalRevenues: is.TotalRevenues,
		TotalExpenses: is.TotalExpenses,
		NetIncome:     is.NetIncome,
	})
}

func (s *Server) getStatementOfCapital(w http.ResponseWriter, r *http.Request) {
	sc, err := s.reportsSvc.StatementOfCapital(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	toJSON(w, http.StatusOK, statementOfCapitalResponse{
		Equity:         toReportAccounts(sc.Equity),
		InitialCapital: sc.InitialCapital,
		NetIncome:      sc.NetIncome,
		FinalCapital:   sc.FinalCapital,
	})
}
