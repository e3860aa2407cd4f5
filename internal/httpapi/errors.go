package httpapi

import (
	"errors"
	"net/http"

	"github.com/rgavilanes/contable/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) { writeErr(w, http.StatusBadRequest, msg, "") }
func notFound(w http.ResponseWriter)               { writeErr(w, http.StatusNotFound, "not_found", "not_found") }
func conflict(w http.ResponseWriter, msg, code string) {
	writeErr(w, http.StatusConflict, msg, code)
}
func unprocessable(w http.ResponseWriter, msg, code string) {
	writeErr(w, http.StatusUnprocessableEntity, msg, code)
}

// writeDomainError maps domain sentinels to HTTP statuses and codes.
func writeDomainError(w http.ResponseWriter, err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, errs.ErrNotFound):
		notFound(w)
	case errors.Is(err, errs.ErrDuplicateCode):
		conflict(w, msg, "duplicate_code")
	case errors.Is(err, errs.ErrAccountInUse):
		conflict(w, msg, "account_in_use")
	case errors.Is(err, errs.ErrAccountHasChildren):
		conflict(w, msg, "account_has_children")
	case errors.Is(err, errs.ErrSameAccount):
		unprocessable(w, msg, "same_account")
	case errors.Is(err, errs.ErrInvalidAmount):
		unprocessable(w, msg, "invalid_amount")
	case errors.Is(err, errs.ErrMissingTaxAccount):
		unprocessable(w, msg, "missing_tax_account")
	case errors.Is(err, errs.ErrUnbalancedEntry):
		unprocessable(w, msg, "unbalanced_entry")
	case errors.Is(err, errs.ErrNotPostable):
		unprocessable(w, msg, "not_postable")
	case errors.Is(err, errs.ErrInvalid):
		badRequest(w, msg)
	default:
		writeErr(w, http.StatusInternalServerError, "internal error", "internal")
	}
}
