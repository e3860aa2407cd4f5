package httpapi

import (
	"context"

	"github.com/google/uuid"

	"github.com/rgavilanes/contable/internal/ledger"
)

// Store combines everything the HTTP layer needs from a storage backend. The
// memory and postgres stores both satisfy it.
type Store interface {
	ListAccounts(ctx context.Context) ([]ledger.Account, error)
	GetAccount(ctx context.Context, accountCode string) (ledger.Account, error)
	CreateAccount(ctx context.Context, a ledger.Account) (ledger.Account, error)
	DeleteAccount(ctx context.Context, accountCode string) error

	ListTransactions(ctx context.Context) ([]ledger.Transaction, error)
	CreateTransactions(ctx context.Context, lines []ledger.Transaction) error
	HasTransactions(ctx context.Context, accountCode string) (bool, error)
	EntryByID(ctx context.Context, entryID uuid.UUID) (ledger.JournalEntry, error)

	GetEntryByIdempotencyKey(ctx context.Context, key string) (ledger.JournalEntry, bool, error)
	SaveIdempotencyKey(ctx context.Context, key string, entryID uuid.UUID) error
}

// ReadyChecker is optionally implemented by stores that can verify their
// backing connection (the postgres store does, the memory store does not).
type ReadyChecker interface {
	Ready(ctx context.Context) error
}
