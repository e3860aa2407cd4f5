// Package reports assembles the financial statements from the full posting
// history. Statements always cover all transactions; date filters apply to the
// ledger views, not here.
package reports

import (
	"context"

	"github.com/rgavilanes/contable/internal/ledger"
)

// Repo defines the reads needed to assemble statements.
type Repo interface {
	ListAccounts(ctx context.Context) ([]ledger.Account, error)
	ListTransactions(ctx context.Context) ([]ledger.Transaction, error)
}

// Service derives the three financial statements.
type Service interface {
	BalanceSheet(ctx context.Context) (ledger.BalanceSheet, error)
	IncomeStatement(ctx context.Context) (ledger.IncomeStatement, error)
	StatementOfCapital(ctx context.Context) (ledger.StatementOfCapital, error)
}

type service struct {
	repo Repo
}

func New(repo Repo) Service { return &service{repo: repo} }

func (s *service) build(ctx context.Context) (ledger.Report, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return ledger.Report{}, err
	}
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return ledger.Report{}, err
	}
	return ledger.BuildReport(accounts, txs), nil
}

func (s *service) BalanceSheet(ctx context.Context) (ledger.BalanceSheet, error) {
	r, err := s.build(ctx)
	if err != nil {
		return ledger.BalanceSheet{}, err
	}
	return r.BalanceSheet(), nil
}

func (s *service) IncomeStatement(ctx context.Context) (ledger.IncomeStatement, error) {
	r, err := s.build(ctx)
	if err != nil {
		return ledger.IncomeStatement{}, err
	}
	return r.IncomeStatement(), nil
}

func (s *service) StatementOfCapital(ctx context.Context) (ledger.StatementOfCapital, error) {
	r, err := s.build(ctx)
	if err != nil {
		return ledger.StatementOfCapital{}, err
	}
	return r.StatementOfCapital(), nil
}
