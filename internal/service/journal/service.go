package journal

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rgavilanes/contable/internal/errs"
	"github.com/rgavilanes/contable/internal/ledger"
)

// Repo defines read operations needed by the service.
type Repo interface {
	ListAccounts(ctx context.Context) ([]ledger.Account, error)
	ListTransactions(ctx context.Context) ([]ledger.Transaction, error)
}

// Writer defines write operations needed by the service.
type Writer interface {
	// CreateTransactions persists all lines of one journal entry atomically.
	CreateTransactions(ctx context.Context, lines []ledger.Transaction) error
}

// EntryInput is the caller's request for a two-account posting.
type EntryInput struct {
	Date        string
	Description string
	DebitCode   string
	CreditCode  string
	Base        float64
	ApplyTax    bool
}

// Service exposes derivation and creation of journal entries plus the ledger
// and trial-balance views.
type Service interface {
	ValidateInput(in EntryInput) error
	Preview(ctx context.Context, in EntryInput) ([]ledger.Line, error)
	CreateEntry(ctx context.Context, in EntryInput) (ledger.JournalEntry, error)
	Journal(ctx context.Context) ([]ledger.JournalEntry, error)
	GeneralLedger(ctx context.Context, f ledger.Filter) ([]ledger.LedgerAccount, error)
	TrialBalance(ctx context.Context, f ledger.Filter) ([]ledger.TrialBalanceRow, error)
}

type service struct {
	repo    Repo
	writer  Writer
	taxRate float64
}

// New constructs the journal service with the tax rate applied to tax-bearing
// entries.
func New(repo Repo, writer Writer, taxRate float64) Service {
	return &service{repo: repo, writer: writer, taxRate: taxRate}
}

func (s *service) ValidateInput(in EntryInput) error {
	if in.Description == "" {
		return errs.ErrInvalid
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", errs.ErrInvalid)
	}
	if in.Base <= 0 {
		return errs.ErrInvalidAmount
	}
	if in.DebitCode == "" || in.CreditCode == "" {
		return errs.ErrInvalid
	}
	return nil
}

// Preview derives the entry's lines without persisting anything.
func (s *service) Preview(ctx context.Context, in EntryInput) ([]ledger.Line, error) {
	if err := s.ValidateInput(in); err != nil {
		return nil, err
	}
	catalog, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.BuildEntryLines(catalog, in.DebitCode, in.CreditCode, in.Base, in.ApplyTax, s.taxRate, in.Description)
}

// CreateEntry derives the lines, stamps them with fresh ids sharing one entry
// id, re-checks the aggregate invariant and persists the batch atomically.
// Nothing is written when any step fails.
func (s *service) CreateEntry(ctx context.Context, in EntryInput) (ledger.JournalEntry, error) {
	lines, err := s.Preview(ctx, in)
	if err != nil {
		return ledger.JournalEntry{}, err
	}

	entryID := uuid.New()
	txs := make([]ledger.Transaction, 0, len(lines))
	for i, ln := range lines {
		txs = append(txs, ledger.Transaction{
			ID:          uuid.New(),
			EntryID:     entryID,
			Seq:         i,
			Date:        in.Date,
			Account:     ln.Account,
			Description: ln.Description,
			Side:        ln.Side,
			Amount:      ln.Amount,
			IVA:         ln.IVA,
			Total:       ln.Total,
		})
	}

	entry, err := ledger.NewJournalEntry(entryID, in.Date, in.Description, txs)
	if err != nil {
		return ledger.JournalEntry{}, err
	}
	if err := s.writer.CreateTransactions(ctx, entry.Lines); err != nil {
		return ledger.JournalEntry{}, err
	}
	return entry, nil
}

// Journal groups stored transactions into entries by shared entry id, newest
// first by (date, id). Lines within an entry are ordered by Seq, and the
// entry's date and description come from its first line; derived lines such as
// tax postings carry a prefixed description and never sit at Seq 0, so the
// header stays the caller's regardless of how the store orders its rows.
func (s *service) Journal(ctx context.Context) ([]ledger.JournalEntry, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*ledger.JournalEntry)
	order := make([]uuid.UUID, 0)
	for _, t := range txs {
		e, ok := byID[t.EntryID]
		if !ok {
			e = &ledger.JournalEntry{ID: t.EntryID}
			byID[t.EntryID] = e
			order = append(order, t.EntryID)
		}
		e.Lines = append(e.Lines, t)
	}
	out := make([]ledger.JournalEntry, 0, len(order))
	for _, id := range order {
		e := *byID[id]
		sort.Slice(e.Lines, func(i, j int) bool { return e.Lines[i].Seq < e.Lines[j].Seq })
		e.Date = e.Lines[0].Date
		e.Description = e.Lines[0].Description
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out, nil
}

func (s *service) GeneralLedger(ctx context.Context, f ledger.Filter) ([]ledger.LedgerAccount, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.GeneralLedger(txs, f), nil
}

func (s *service) TrialBalance(ctx context.Context, f ledger.Filter) ([]ledger.TrialBalanceRow, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.TrialBalance(txs, f), nil
}
