// Package catalog implements the account catalog rules: unique codes, sorted
// listing, and deletion guarded by usage and hierarchy checks.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgavilanes/contable/internal/code"
	"github.com/rgavilanes/contable/internal/errs"
	"github.com/rgavilanes/contable/internal/ledger"
)

// Repo defines read operations needed by the service.
type Repo interface {
	ListAccounts(ctx context.Context) ([]ledger.Account, error)
	GetAccount(ctx context.Context, accountCode string) (ledger.Account, error)
}

// TxReader answers whether any transaction references an account.
type TxReader interface {
	HasTransactions(ctx context.Context, accountCode string) (bool, error)
}

// Writer defines write operations needed by the service.
type Writer interface {
	CreateAccount(ctx context.Context, a ledger.Account) (ledger.Account, error)
	DeleteAccount(ctx context.Context, accountCode string) error
}

// Service exposes validation and mutation of the account catalog.
type Service interface {
	ValidateCreate(a ledger.Account) error
	Create(ctx context.Context, a ledger.Account) (ledger.Account, error)
	Delete(ctx context.Context, accountCode string) error
	List(ctx context.Context) ([]ledger.Account, error)
	ListPostable(ctx context.Context) ([]ledger.Account, error)
}

type service struct {
	repo   Repo
	txs    TxReader
	writer Writer
}

func New(repo Repo, txs TxReader, writer Writer) Service {
	return &service{repo: repo, txs: txs, writer: writer}
}

func (s *service) ValidateCreate(a ledger.Account) error {
	if a.Code == "" || a.Name == "" {
		return errs.ErrInvalid
	}
	if !code.IsValid(a.Code) {
		return fmt.Errorf("%w: account code must be numeric, optionally with a dotted suffix", errs.ErrInvalid)
	}
	return nil
}

// Create adds the account after checking the code is unused. The stored
// catalog keeps codes unique; listing re-sorts, so insert order is irrelevant.
func (s *service) Create(ctx context.Context, a ledger.Account) (ledger.Account, error) {
	a.Code = code.Normalize(a.Code)
	if err := s.ValidateCreate(a); err != nil {
		return ledger.Account{}, err
	}
	if _, err := s.repo.GetAccount(ctx, a.Code); err == nil {
		return ledger.Account{}, errs.ErrDuplicateCode
	} else if !errors.Is(err, errs.ErrNotFound) {
		return ledger.Account{}, err
	}
	return s.writer.CreateAccount(ctx, a)
}

// Delete removes an account. It refuses when the account is referenced by any
// transaction or is a prefix-parent of another catalog entry; the catalog is
// left unchanged on failure.
func (s *service) Delete(ctx context.Context, accountCode string) error {
	accountCode = code.Normalize(accountCode)
	if _, err := s.repo.GetAccount(ctx, accountCode); err != nil {
		return err
	}
	used, err := s.txs.HasTransactions(ctx, accountCode)
	if err != nil {
		return err
	}
	if used {
		return errs.ErrAccountInUse
	}
	all, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return err
	}
	for _, other := range all {
		if ledger.IsParentOf(accountCode, other.Code) {
			return errs.ErrAccountHasChildren
		}
	}
	return s.writer.DeleteAccount(ctx, accountCode)
}

func (s *service) List(ctx context.Context) ([]ledger.Account, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.SortAccounts(accounts), nil
}

// ListPostable returns the sorted accounts transactions may reference.
func (s *service) ListPostable(ctx context.Context) ([]ledger.Account, error) {
	accounts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.PostableAccounts(accounts), nil
}
