package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
    ErrNotFound = errors.New("not_found")
    ErrInvalid  = errors.New("invalid")

    // ErrDuplicateCode indicates the catalog already holds an account with the code.
    ErrDuplicateCode = errors.New("duplicate_code")
    // ErrAccountInUse indicates the account is referenced by posted transactions.
    ErrAccountInUse = errors.New("account_in_use")
    // ErrAccountHasChildren indicates the account code is a prefix-parent of another account.
    ErrAccountHasChildren = errors.New("account_has_children")
    // ErrSameAccount indicates the debit and credit selections point at one account.
    ErrSameAccount = errors.New("same_account")
    // ErrInvalidAmount indicates a non-positive base amount.
    ErrInvalidAmount = errors.New("invalid_amount")
    // ErrMissingTaxAccount indicates a well-known tax account is absent from the catalog.
    ErrMissingTaxAccount = errors.New("missing_tax_account")
    // ErrUnbalancedEntry indicates sum(debits) != sum(credits) beyond tolerance.
    ErrUnbalancedEntry = errors.New("unbalanced_entry")
    // ErrNotPostable indicates a posting references an aggregation-only account.
    ErrNotPostable = errors.New("not_postable")
)
