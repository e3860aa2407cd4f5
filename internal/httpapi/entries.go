package httpapi

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rgavilanes/contable/internal/ledger"
	"github.com/rgavilanes/contable/internal/service/journal"
)

// postEntry posts a balanced journal entry. When an Idempotency-Key header is
// present, a repeated key returns the originally created entry with 200.
func (s *Server) postEntry(w http.ResponseWriter, r *http.Request) {
	in, ok := r.Context().Value(ctxKeyPostEntry).(journal.EntryInput)
	if !ok {
		badRequest(w, "missing validated request")
		return
	}

	key := r.Header.Get("Idempotency-Key")
	if key != "" {
		prior, found, err := s.store.GetEntryByIdempotencyKey(r.Context(), key)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		if found {
			toJSON(w, http.StatusOK, s.toEntryResponse(prior))
			return
		}
	}

	entry, err := s.journalSvc.CreateEntry(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if key != "" {
		if err := s.store.SaveIdempotencyKey(r.Context(), key, entry.ID); err != nil {
			s.log.Error("save idempotency key", "err", err)
		}
	}
	toJSON(w, http.StatusCreated, s.toEntryResponse(entry))
}

// previewEntry returns the lines an entry would post without persisting them.
func (s *Server) previewEntry(w http.ResponseWriter, r *http.Request) {
	in, ok := r.Context().Value(ctxKeyPostEntry).(journal.EntryInput)
	if !ok {
		badRequest(w, "missing validated request")
		return
	}
	lines, err := s.journalSvc.Preview(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	resp := previewResponse{Lines: make([]lineResponse, 0, len(lines))}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, s.toLineResponse(l))
		switch l.Side {
		case ledger.SideDebit:
			resp.TotalDebits += l.Total
		case ledger.SideCredit:
			resp.TotalCredits += l.Total
		}
	}
	toJSON(w, http.StatusOK, resp)
}

func (s *Server) getEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid entry id")
		return
	}
	entry, err := s.store.EntryByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	toJSON(w, http.StatusOK, s.toEntryResponse(entry))
}

// getJournal lists posted entries, most recent first.
func (s *Server) getJournal(w http.ResponseWriter, r *http.Request) {
	entries, err := s.journalSvc.Journal(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, s.toEntryResponse(e))
	}
	toJSON(w, http.StatusOK, out)
}
