package httpapi

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/rgavilanes/contable/internal/ledger"
)

func (s *Server) postAccount(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ctxKeyPostAccount).(postAccountRequest)
	if !ok {
		badRequest(w, "missing validated request")
		return
	}
	created, err := s.catalogSvc.Create(r.Context(), ledger.Account{Code: req.Code, Name: req.Name})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	// A new account can still be a parent of existing codes, so the flags are
	// computed against the full catalog.
	accounts, err := s.catalogSvc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	resp, err := s.toAccountResponse(r, created, accounts)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	toJSON(w, http.StatusCreated, resp)
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.catalogSvc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if r.URL.Query().Get("postable") == "true" {
		accounts = ledger.PostableAccounts(accounts)
	}
	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp, err := s.toAccountResponse(r, a, accounts)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		out = append(out, resp)
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) toAccountResponse(r *http.Request, a ledger.Account, all []ledger.Account) (accountResponse, error) {
	isParent := false
	for _, other := range all {
		if ledger.IsParentOf(a.Code, other.Code) {
			isParent = true
			break
		}
	}
	used, err := s.store.HasTransactions(r.Context(), a.Code)
	if err != nil {
		return accountResponse{}, err
	}
	return accountResponse{
		Code:      a.Code,
		Name:      a.Name,
		Class:     ledger.ClassOf(a.Code),
		Postable:  ledger.Postable(a.Code),
		Deletable: !used && !isParent,
	}, nil
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := s.catalogSvc.Delete(r.Context(), code); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
