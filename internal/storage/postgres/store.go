package postgres

// Package postgres provides a pgx-backed storage implementation that satisfies
// the repository and writer interfaces used by the services and the HTTP API.
//
// It is intentionally small and explicit. The schema lives under
// db/migrations. This package focuses on mapping between the domain entities
// and SQL rows and running the necessary statements/transactions.

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rgavilanes/contable/internal/chart"
	"github.com/rgavilanes/contable/internal/errs"
	"github.com/rgavilanes/contable/internal/ledger"
)

// Store holds a pgx connection pool and implements the read/write interfaces
// used across the service layer. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// SeedDev inserts the default chart of accounts for quick local testing,
// skipping codes that already exist.
func (s *Store) SeedDev(ctx context.Context) ([]ledger.Account, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	accs := chart.Default()
	for _, a := range accs {
		if _, err := tx.Exec(ctx, `
            insert into accounts (code, name) values ($1,$2)
            on conflict (code) do nothing
        `, a.Code, a.Name); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return accs, nil
}

// --- Account reads ---

// ListAccounts returns the whole catalog.
func (s *Store) ListAccounts(ctx context.Context) ([]ledger.Account, error) {
	rows, err := s.pool.Query(ctx, `
        select code, name from accounts order by code
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Account, 0)
	for rows.Next() {
		var a ledger.Account
		if err := rows.Scan(&a.Code, &a.Name); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetAccount fetches a single account by code.
func (s *Store) GetAccount(ctx context.Context, accountCode string) (ledger.Account, error) {
	var a ledger.Account
	err := s.pool.QueryRow(ctx, `
        select code, name from accounts where code = $1
    `, accountCode).Scan(&a.Code, &a.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Account{}, errs.ErrNotFound
	}
	if err != nil {
		return ledger.Account{}, err
	}
	return a, nil
}

// --- Account writes ---

// CreateAccount inserts an account row.
func (s *Store) CreateAccount(ctx context.Context, a ledger.Account) (ledger.Account, error) {
	_, err := s.pool.Exec(ctx, `
        insert into accounts (code, name) values ($1,$2)
    `, a.Code, a.Name)
	if err != nil {
		return ledger.Account{}, err
	}
	return a, nil
}

// DeleteAccount removes an account row by code.
func (s *Store) DeleteAccount(ctx context.Context, accountCode string) error {
	ct, err := s.pool.Exec(ctx, `delete from accounts where code = $1`, accountCode)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// --- Transaction reads ---

// ListTransactions returns the posting history ordered by (date, id).
func (s *Store) ListTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	rows, err := s.pool.Query(ctx, `
        select id, entry_id, seq, date, account_code, account_name, description, side, amount, iva, total
        from transactions
        order by date asc, entry_id asc, seq asc
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Transaction, 0)
	for rows.Next() {
		var t ledger.Transaction
		var side string
		if err := rows.Scan(&t.ID, &t.EntryID, &t.Seq, &t.Date, &t.Account.Code, &t.Account.Name, &t.Description, &side, &t.Amount, &t.IVA, &t.Total); err != nil {
			return nil, err
		}
		t.Side = ledger.Side(side)
		out = append(out, t)
	}
	return out, rows.Err()
}

// HasTransactions reports whether any posting references the account code.
func (s *Store) HasTransactions(ctx context.Context, accountCode string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
        select exists(select 1 from transactions where account_code = $1)
    `, accountCode).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// EntryByID collects the lines sharing one entry id.
func (s *Store) EntryByID(ctx context.Context, entryID uuid.UUID) (ledger.JournalEntry, error) {
	rows, err := s.pool.Query(ctx, `
        select id, entry_id, seq, date, account_code, account_name, description, side, amount, iva, total
        from transactions
        where entry_id = $1
        order by seq asc
    `, entryID)
	if err != nil {
		return ledger.JournalEntry{}, err
	}
	defer rows.Close()
	var e ledger.JournalEntry
	for rows.Next() {
		var t ledger.Transaction
		var side string
		if err := rows.Scan(&t.ID, &t.EntryID, &t.Seq, &t.Date, &t.Account.Code, &t.Account.Name, &t.Description, &side, &t.Amount, &t.IVA, &t.Total); err != nil {
			return ledger.JournalEntry{}, err
		}
		t.Side = ledger.Side(side)
		if e.Lines == nil {
			e = ledger.JournalEntry{ID: entryID, Date: t.Date, Description: t.Description}
		}
		e.Lines = append(e.Lines, t)
	}
	if err := rows.Err(); err != nil {
		return ledger.JournalEntry{}, err
	}
	if e.Lines == nil {
		return ledger.JournalEntry{}, errs.ErrNotFound
	}
	return e, nil
}

// --- Transaction writes ---

// CreateTransactions inserts all lines of one entry in a transaction.
func (s *Store) CreateTransactions(ctx context.Context, lines []ledger.Transaction) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	for _, t := range lines {
		if _, err := tx.Exec(ctx, `
            insert into transactions (id, entry_id, seq, date, account_code, account_name, description, side, amount, iva, total)
            values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        `, t.ID, t.EntryID, t.Seq, t.Date, t.Account.Code, t.Account.Name, t.Description, string(t.Side), t.Amount, t.IVA, t.Total); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("insert line: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// --- Idempotency ---

// GetEntryByIdempotencyKey resolves an entry by idempotency key.
func (s *Store) GetEntryByIdempotencyKey(ctx context.Context, key string) (ledger.JournalEntry, bool, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx, `
        select entry_id from entry_idempotency where key = $1
    `, key).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.JournalEntry{}, false, nil
	}
	if err != nil {
		return ledger.JournalEntry{}, false, err
	}
	e, err := s.EntryByID(ctx, id)
	if err != nil {
		return ledger.JournalEntry{}, false, err
	}
	return e, true, nil
}

// SaveIdempotencyKey stores a mapping from key to entry id.
func (s *Store) SaveIdempotencyKey(ctx context.Context, key string, entryID uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `
        insert into entry_idempotency (key, entry_id)
        values ($1,$2)
        on conflict (key) do nothing
    `, key, entryID)
	return err
}
