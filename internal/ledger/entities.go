package ledger

import (
	"math"

	"github.com/google/uuid"

	"github.com/rgavilanes/contable/internal/errs"
)

// Side represents the accounting position of a posting line.
type Side string

const (
	// SideDebit records a value on the debit side of an account.
	SideDebit Side = "debit"
	// SideCredit records a value on the credit side of an account.
	SideCredit Side = "credit"
)

// Class enumerates the broad classification of an account, derived from the
// leading digit of its code.
type Class string

const (
	// ClassAsset increases on the debit side and holds resources owned by the entity.
	ClassAsset Class = "asset"
	// ClassLiability increases on the credit side and tracks obligations.
	ClassLiability Class = "liability"
	// ClassEquity captures the owner's residual interest in the entity.
	ClassEquity Class = "equity"
	// ClassRevenue represents inflows that increase equity.
	ClassRevenue Class = "revenue"
	// ClassExpense represents outflows that decrease equity.
	ClassExpense Class = "expense"
	// ClassOther covers codes outside 1..5; debit-normal for class 6, excluded
	// from every financial statement.
	ClassOther Class = "other"
)

// Account is a catalog entry. The code doubles as the sort and hierarchy key.
type Account struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Transaction is a single posting line. It embeds the account by value, so a
// later rename in the catalog does not rewrite history. Immutable once created.
type Transaction struct {
	ID      uuid.UUID `json:"id"`
	EntryID uuid.UUID `json:"entry_id"`
	// Seq is the line's position within its entry. Ids are random, so this is
	// the only stable ordering for reassembling an entry from storage.
	Seq int `json:"seq"`
	// Date is an ISO YYYY-MM-DD string; ordering is lexicographic.
	Date        string    `json:"date"`
	Account     Account   `json:"account"`
	Description string    `json:"description"`
	Side        Side      `json:"side"`
	Amount      float64   `json:"amount"`
	IVA         float64   `json:"iva"`
	Total       float64   `json:"total"`
}

// JournalEntry is the atomic grouping of transactions sharing one entry id,
// date and description.
type JournalEntry struct {
	ID          uuid.UUID     `json:"id"`
	Date        string        `json:"date"`
	Description string        `json:"description"`
	Lines       []Transaction `json:"lines"`
}

// NewJournalEntry assembles an entry from its lines, enforcing the aggregate
// invariant: non-empty, every line carries the entry's id, and debits equal
// credits within EntryTolerance.
func NewJournalEntry(id uuid.UUID, date, description string, lines []Transaction) (JournalEntry, error) {
	if len(lines) == 0 {
		return JournalEntry{}, errs.ErrUnbalancedEntry
	}
	var debits, credits float64
	for _, ln := range lines {
		if ln.EntryID != id {
			return JournalEntry{}, errs.ErrInvalid
		}
		switch ln.Side {
		case SideDebit:
			debits += ln.Total
		case SideCredit:
			credits += ln.Total
		default:
			return JournalEntry{}, errs.ErrInvalid
		}
	}
	if debits <= 0 || math.Abs(debits-credits) > EntryTolerance {
		return JournalEntry{}, errs.ErrUnbalancedEntry
	}
	return JournalEntry{ID: id, Date: date, Description: description, Lines: lines}, nil
}

// Totals returns the entry's summed debit and credit totals.
func (e JournalEntry) Totals() (debits, credits float64) {
	for _, ln := range e.Lines {
		if ln.Side == SideDebit {
			debits += ln.Total
		} else {
			credits += ln.Total
		}
	}
	return debits, credits
}
