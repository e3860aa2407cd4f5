package memory

// Package memory provides a simple in-memory implementation used as the
// default backend and for tests. It keeps code paths easy to follow while
// allowing a real DB to be plugged in behind the same interfaces.
import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rgavilanes/contable/internal/errs"
	"github.com/rgavilanes/contable/internal/ledger"
)

// Store is an in-memory implementation of the repository+writer interfaces
// used by the services and the API. It is guarded by an RWMutex for
// concurrent reads/writes; a journal entry's lines are appended inside one
// critical section so a partially written entry is never observable.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]ledger.Account
	txs      []ledger.Transaction
	// Idempotency: key -> entry id
	entryIdem map[string]uuid.UUID
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		accounts:  make(map[string]ledger.Account),
		entryIdem: make(map[string]uuid.UUID),
	}
}

// Seed helpers for local dev/tests.
func (s *Store) SeedAccount(a ledger.Account) {
	s.mu.Lock()
	s.accounts[a.Code] = a
	s.mu.Unlock()
}

func (s *Store) SeedAccounts(accs []ledger.Account) {
	s.mu.Lock()
	for _, a := range accs {
		s.accounts[a.Code] = a
	}
	s.mu.Unlock()
}

func (s *Store) Reset() {
	s.mu.Lock()
	s.accounts = map[string]ledger.Account{}
	s.txs = nil
	s.entryIdem = map[string]uuid.UUID{}
	s.mu.Unlock()
}

// ListAccounts returns the catalog in unspecified order; callers sort.
func (s *Store) ListAccounts(_ context.Context) ([]ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	return out, nil
}

// GetAccount returns an account by code.
func (s *Store) GetAccount(_ context.Context, accountCode string) (ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[accountCode]
	if !ok {
		return ledger.Account{}, errs.ErrNotFound
	}
	return a, nil
}

// CreateAccount persists a new account.
func (s *Store) CreateAccount(_ context.Context, a ledger.Account) (ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.Code] = a
	return a, nil
}

// DeleteAccount removes an account by code.
func (s *Store) DeleteAccount(_ context.Context, accountCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[accountCode]; !ok {
		return errs.ErrNotFound
	}
	delete(s.accounts, accountCode)
	return nil
}

// ListTransactions returns a copy of the posting history in append order.
func (s *Store) ListTransactions(_ context.Context) ([]ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Transaction, len(s.txs))
	copy(out, s.txs)
	return out, nil
}

// CreateTransactions appends all lines of one journal entry atomically.
func (s *Store) CreateTransactions(_ context.Context, lines []ledger.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, lines...)
	return nil
}

// HasTransactions reports whether any posting references the account code.
func (s *Store) HasTransactions(_ context.Context, accountCode string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.txs {
		if t.Account.Code == accountCode {
			return true, nil
		}
	}
	return false, nil
}

// EntryByID collects the lines sharing one entry id.
func (s *Store) EntryByID(_ context.Context, entryID uuid.UUID) (ledger.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var e ledger.JournalEntry
	for _, t := range s.txs {
		if t.EntryID != entryID {
			continue
		}
		if e.Lines == nil {
			e = ledger.JournalEntry{ID: entryID, Date: t.Date, Description: t.Description}
		}
		e.Lines = append(e.Lines, t)
	}
	if e.Lines == nil {
		return ledger.JournalEntry{}, errs.ErrNotFound
	}
	return e, nil
}

// GetEntryByIdempotencyKey resolves a previously posted entry by key.
func (s *Store) GetEntryByIdempotencyKey(ctx context.Context, key string) (ledger.JournalEntry, bool, error) {
	s.mu.RLock()
	id, ok := s.entryIdem[key]
	s.mu.RUnlock()
	if !ok {
		return ledger.JournalEntry{}, false, nil
	}
	e, err := s.EntryByID(ctx, id)
	if err != nil {
		return ledger.JournalEntry{}, false, err
	}
	return e, true, nil
}

// SaveIdempotencyKey stores a key mapping for an entry. First write wins.
func (s *Store) SaveIdempotencyKey(_ context.Context, key string, entryID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entryIdem[key]; !exists {
		s.entryIdem[key] = entryID
	}
	return nil
}
