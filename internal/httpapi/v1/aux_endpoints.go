package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/nexinvo/gstledger/internal/ledger"
)

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	// If the underlying store implements Ready, call it with a short timeout.
	type readyIf interface{ Ready(context.Context) error }
	ctx, cancel := context.WithTimeout(r.Context(), 800*time.Millisecond)
	defer cancel()
	if rc, ok := any(s.store).(readyIf); ok {
		if err := rc.Ready(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}

type financialYearResponse struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func (s *Server) currentFinancialYear(w http.ResponseWriter, _ *http.Request) {
	fy := ledger.CurrentFinancialYear(time.Now())
	toJSON(w, http.StatusOK, financialYearResponse{
		Label: fy.Label(),
		Start: formatDate(fy.Start),
		End:   formatDate(fy.End),
	})
}
