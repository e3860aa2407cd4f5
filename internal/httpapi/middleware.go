package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rgavilanes/contable/internal/ledger"
	"github.com/rgavilanes/contable/internal/service/journal"
)

type ctxKey string

const ctxKeyPostAccount ctxKey = "validatedPostAccount"
const ctxKeyPostEntry ctxKey = "validatedPostEntry"
const ctxKeyLedgerQuery ctxKey = "validatedLedgerQuery"

// validatePostAccount decodes and validates the POST /v1/accounts body and
// stores the validated request in the request context for the handler to use.
func (s *Server) validatePostAccount() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req postAccountRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			if err := s.catalogSvc.ValidateCreate(ledger.Account{Code: req.Code, Name: req.Name}); err != nil {
				writeDomainError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostAccount, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validatePostEntry decodes and validates the entry body shared by
// POST /v1/entries and POST /v1/entries/preview.
func (s *Server) validatePostEntry() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req postEntryRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			if _, err := time.Parse("2006-01-02", req.Date); err != nil {
				badRequest(w, "date must be YYYY-MM-DD")
				return
			}
			in := journal.EntryInput{
				Date:        req.Date,
				Description: req.Description,
				DebitCode:   req.DebitCode,
				CreditCode:  req.CreditCode,
				Base:        req.Base,
				ApplyTax:    req.ApplyTax,
			}
			if err := s.journalSvc.ValidateInput(in); err != nil {
				writeDomainError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostEntry, in)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateLedgerQuery parses query params shared by GET /v1/ledger and
// GET /v1/trial-balance. Dates are inclusive ISO bounds; account narrows by code.
func (s *Server) validateLedgerQuery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			f := ledger.Filter{
				StartDate:   q.Get("start_date"),
				EndDate:     q.Get("end_date"),
				AccountCode: q.Get("account"),
			}
			for _, d := range []string{f.StartDate, f.EndDate} {
				if d == "" {
					continue
				}
				if _, err := time.Parse("2006-01-02", d); err != nil {
					badRequest(w, "dates must be YYYY-MM-DD")
					return
				}
			}
			ctx := context.WithValue(r.Context(), ctxKeyLedgerQuery, f)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
