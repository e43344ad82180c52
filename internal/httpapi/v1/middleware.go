package v1

import (
	"context"
	"encoding/json"
	"net/http"
)

type ctxKey string

const ctxKeyPostAccount ctxKey = "validatedPostAccount"
const ctxKeyPostVoucher ctxKey = "validatedPostVoucher"

// validatePostAccount parses and validates the POST /ledger-accounts body and
// stores the domain account in the request context for the handler.
func (s *Server) validatePostAccount() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req accountRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			a := toAccountDomain(req)
			if err := a.Metadata.Validate(); err != nil {
				unprocessable(w, err.Error(), "validation_error")
				return
			}
			if err := s.accounts.ValidateCreate(a); err != nil {
				badRequest(w, err.Error())
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostAccount, a)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validatePostVoucher ensures the POST /vouchers request adheres to the
// double-entry invariants before the handler persists it.
func (s *Server) validatePostVoucher() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req voucherRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			v, err := toVoucherDomain(req)
			if err != nil {
				badRequest(w, "invalid voucher_date")
				return
			}
			if err := v.Metadata.Validate(); err != nil {
				unprocessable(w, err.Error(), "validation_error")
				return
			}
			if err := s.vouchers.Validate(r.Context(), v); err != nil {
				code, msg := mapValidationError(err)
				unprocessable(w, msg, code)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostVoucher, v)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
