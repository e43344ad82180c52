package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/nexinvo/gstledger/internal/ledger"
	"github.com/nexinvo/gstledger/internal/service/account"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := account.ListFilter{
		CashBank: q.Get("cash_bank") == "true",
		Parties:  q.Get("parties") == "true",
	}
	if t := q.Get("account_type"); t != "" {
		at := ledger.AccountType(t)
		if !ledger.ValidAccountType(at) {
			badRequest(w, "invalid account_type")
			return
		}
		f.Type = &at
	}
	accounts, err := s.accounts.List(r.Context(), f)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) postAccount(w http.ResponseWriter, r *http.Request) {
	a, ok := r.Context().Value(ctxKeyPostAccount).(ledger.LedgerAccount)
	if !ok {
		badRequest(w, "missing validated request")
		return
	}
	created, err := s.accounts.Create(r.Context(), a)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, toAccountResponse(created))
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	a, err := s.accounts.Get(r.Context(), id)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toAccountResponse(a))
}

func (s *Server) updateAccount(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid id")
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
	a.ID = id
	updated, err := s.accounts.Update(r.Context(), a)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toAccountResponse(updated))
}

func (s *Server) deactivateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if err := s.accounts.Deactivate(r.Context(), id); err != nil {
		writeServiceErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// patchOpeningBalance changes only the opening balance pair of the account.
func (s *Server) patchOpeningBalance(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	var req openingBalanceRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	updated, err := s.accounts.UpdateOpeningBalance(r.Context(), id, req.OpeningBalance, ledger.BalanceType(req.OpeningBalanceType))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toAccountResponse(updated))
}

// clearOpeningBalance resets the opening balance to zero Dr. The UI asks for
// confirmation first; the API call itself is not reversible.
func (s *Server) clearOpeningBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	updated, err := s.accounts.ClearOpeningBalance(r.Context(), id)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toAccountResponse(updated))
}
