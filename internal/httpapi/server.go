// Package httpapi wires the HTTP surface of the accounting service.
// It keeps handlers thin, delegating business rules to the service layer.
package httpapi

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rgavilanes/contable/internal/service/catalog"
	"github.com/rgavilanes/contable/internal/service/journal"
	"github.com/rgavilanes/contable/internal/service/reports"
)

// Server wires handlers and middleware using Chi.
type Server struct {
	catalogSvc catalog.Service
	journalSvc journal.Service
	reportsSvc reports.Service
	store      Store
	currency   string
	log        *slog.Logger
	rt         *chi.Mux
}

// New constructs the HTTP server with routes and middleware. Amounts in
// responses are rendered in the given ISO currency.
func New(store Store, taxRate float64, currency string, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	s := &Server{
		catalogSvc: catalog.New(store, store, store),
		journalSvc: journal.New(store, store, taxRate),
		reportsSvc: reports.New(store),
		store:      store,
		currency:   currency,
		log:        logger,
		rt:         r,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints and attaches any per-route middleware.
func (s *Server) routes() {
	// Accounts
	s.rt.With(s.validatePostAccount()).Post("/v1/accounts", s.postAccount)
	s.rt.Get("/v1/accounts", s.listAccounts)
	s.rt.Delete("/v1/accounts/{code}", s.deleteAccount)
	// Entries
	s.rt.With(s.validatePostEntry()).Post("/v1/entries", s.postEntry)
	s.rt.With(s.validatePostEntry()).Post("/v1/entries/preview", s.previewEntry)
	s.rt.Get("/v1/entries/{id}", s.getEntry)
	s.rt.Get("/v1/journal", s.getJournal)
	// Postings and statements
	s.rt.With(s.validateLedgerQuery()).Get("/v1/ledger", s.getLedger)
	s.rt.With(s.validateLedgerQuery()).Get("/v1/trial-balance", s.getTrialBalance)
	s.rt.Get("/v1/reports/balance-sheet", s.getBalanceSheet)
	s.rt.Get("/v1/reports/income-statement", s.getIncomeStatement)
	s.rt.Get("/v1/reports/statement-of-capital", s.getStatementOfCapital)
	// Health and metrics (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Method(http.MethodGet, "/metrics", metricsHandler())
}
