package httpapi

import (
	"net/http"

	"github.com/rgavilanes/contable/internal/ledger"
)

// getLedger returns per-account posting history with running balances.
func (s *Server) getLedger(w http.ResponseWriter, r *http.Request) {
	f, ok := r.Context().Value(ctxKeyLedgerQuery).(ledger.Filter)
	if !ok {
		badRequest(w, "missing validated query")
		return
	}
	accounts, err := s.journalSvc.GeneralLedger(r.Context(), f)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	catalog, err := s.catalogSvc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := make([]ledgerAccountResponse, 0, len(accounts))
	for _, la := range accounts {
		resp, err := s.toAccountResponse(r, la.Account, catalog)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		entries := make([]ledgerEntryResponse, 0, len(la.Entries))
		for _, le := range la.Entries {
			entries = append(entries, ledgerEntryResponse{
				Transaction: s.toTxResponse(le.Transaction),
				Balance:     le.Balance,
			})
		}
		out = append(out, ledgerAccountResponse{
			Account:      resp,
			Entries:      entries,
			FinalBalance: la.FinalBalance,
			TotalDebits:  la.TotalDebits,
			TotalCredits: la.TotalCredits,
		})
	}
	toJSON(w, http.StatusOK, out)
}

// getTrialBalance returns raw debit and credit sums per account.
func (s *Server) getTrialBalance(w http.ResponseWriter, r *http.Request) {
	f, ok := r.Context().Value(ctxKeyLedgerQuery).(ledger.Filter)
	if !ok {
		badRequest(w, "missing validated query")
		return
	}
	rows, err := s.journalSvc.TrialBalance(r.Context(), f)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	resp := trialBalanceResponse{Rows: make([]trialBalanceRowResponse, 0, len(rows))}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, trialBalanceRowResponse{
			Code:         row.Code,
			Name:         row.Name,
			TotalDebits:  row.TotalDebits,
			TotalCredits: row.TotalCredits,
		})
	}
	resp.TotalDebits, resp.TotalCredits = ledger.TrialBalanceTotals(rows)
	toJSON(w, http.StatusOK, resp)
}
