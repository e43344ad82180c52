package v1

import (
	"net/http"

	"github.com/nexinvo/gstledger/internal/dictionary"
	"github.com/nexinvo/gstledger/internal/ledger"
)

// listGroups serves the curated account groups, optionally filtered by type.
func (s *Server) listGroups(w http.ResponseWriter, r *http.Request) {
	var t *ledger.AccountType
	if raw := r.URL.Query().Get("account_type"); raw != "" {
		at := ledger.AccountType(raw)
		if !ledger.ValidAccountType(at) {
			badRequest(w, "invalid account_type")
			return
		}
		t = &at
	}
	toJSON(w, http.StatusOK, dictionary.GroupsFor(t))
}

// listStates serves the GST state-code dictionary.
func (s *Server) listStates(w http.ResponseWriter, _ *http.Request) {
	toJSON(w, http.StatusOK, dictionary.States())
}
