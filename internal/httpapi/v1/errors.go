package v1

import (
	"errors"
	"net/http"

	"github.com/nexinvo/gstledger/internal/errs"
	"github.com/nexinvo/gstledger/internal/service/account"
	"github.com/nexinvo/gstledger/internal/service/voucher"
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
func notFound(w http.ResponseWriter) {
	writeErr(w, http.StatusNotFound, "not_found", "not_found")
}
func unprocessable(w http.ResponseWriter, msg, code string) {
	writeErr(w, http.StatusUnprocessableEntity, msg, code)
}

// writeServiceErr maps domain errors onto HTTP statuses. Unknown errors are
// 500 with a generic body so internals never leak.
func writeServiceErr(w http.ResponseWriter, err error) {
	var verr *voucher.ValidationError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		notFound(w)
	case errors.Is(err, errs.ErrPosted):
		writeErr(w, http.StatusConflict, "voucher is posted", "posted")
	case errors.Is(err, errs.ErrConflict):
		writeErr(w, http.StatusConflict, err.Error(), "conflict")
	case errors.Is(err, account.ErrNameExists):
		writeErr(w, http.StatusConflict, err.Error(), "name_exists")
	case errors.Is(err, errs.ErrSystemAccount):
		writeErr(w, http.StatusForbidden, "system accounts cannot be modified this way", "system_account")
	case errors.Is(err, errs.ErrTooFewEntries):
		unprocessable(w, err.Error(), "too_few_entries")
	case errors.Is(err, errs.ErrUnbalanced):
		unprocessable(w, err.Error(), "unbalanced_voucher")
	case errors.As(err, &verr):
		unprocessable(w, verr.Error(), "validation_error")
	case errors.Is(err, errs.ErrUnprocessable):
		unprocessable(w, err.Error(), "validation_error")
	case errors.Is(err, errs.ErrInvalid):
		badRequest(w, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, "internal error", "")
	}
}

// mapValidationError normalizes voucher validation errors into a code and
// message for 422 payloads.
func mapValidationError(err error) (code, msg string) {
	if err == nil {
		return "", ""
	}
	msg = err.Error()
	switch {
	case errors.Is(err, errs.ErrTooFewEntries):
		return "too_few_entries", msg
	case errors.Is(err, errs.ErrUnbalanced):
		return "unbalanced_voucher", msg
	default:
		return "validation_error", msg
	}
}
