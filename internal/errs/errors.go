package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	ErrNotFound  = errors.New("not_found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
	ErrInvalid   = errors.New("invalid")
	// ErrUnprocessable is used for semantic validation failures (HTTP 422)
	ErrUnprocessable = errors.New("unprocessable")
	// ErrSystemAccount indicates a system account cannot be modified/deleted
	ErrSystemAccount = errors.New("system_account")
	// ErrPosted indicates a posted voucher can no longer be edited or deleted
	ErrPosted = errors.New("voucher_posted")
	// ErrUnbalanced indicates debits and credits of a voucher do not match
	ErrUnbalanced = errors.New("unbalanced_voucher")
	// ErrTooFewEntries indicates a journal voucher has fewer than 2 entries
	ErrTooFewEntries = errors.New("too_few_entries")
)
