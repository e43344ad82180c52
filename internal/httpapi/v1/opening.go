package v1

import (
	"net/http"

	"github.com/nexinvo/gstledger/internal/service/opening"
)

func (s *Server) listOpeningBalances(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.store.ListAccounts(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	records := opening.Records(accounts)
	out := make([]openingRecordDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, openingRecordDTO{
			LedgerID:      rec.LedgerID,
			LedgerName:    rec.LedgerName,
			Group:         rec.Group,
			DebitBalance:  rec.DebitBalance,
			CreditBalance: rec.CreditBalance,
		})
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) trialBalance(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.store.ListAccounts(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	records := opening.Records(accounts)
	summary := opening.ComputeSummary(records)
	resp := trialBalanceResponse{
		Records:     make([]openingRecordDTO, 0, len(records)),
		TotalDebit:  summary.TotalDebit,
		TotalCredit: summary.TotalCredit,
		Difference:  summary.Difference,
		Balanced:    summary.Balanced,
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, openingRecordDTO{
			LedgerID:      rec.LedgerID,
			LedgerName:    rec.LedgerName,
			Group:         rec.Group,
			DebitBalance:  rec.DebitBalance,
			CreditBalance: rec.CreditBalance,
		})
	}
	toJSON(w, http.StatusOK, resp)
}

// importOpeningBalances accepts a CSV upload, resolves rows against the
// current ledger set and applies accepted rows as independent balance
// patches. Rejected rows come back per row; a partial import is a success.
func (s *Server) importOpeningBalances(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "file is required")
		return
	}
	defer file.Close()

	rows, err := opening.ParseCSV(file)
	if err != nil {
		unprocessable(w, err.Error(), "invalid_file")
		return
	}
	accounts, err := s.store.ListAccounts(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	res := opening.ImportFromTable(rows, accounts)
	commit := opening.Commit(r.Context(), res.Accepted, s.accounts)

	resp := importResponse{
		Summary:   res.Summary(),
		Accepted:  len(res.Accepted),
		Rejected:  make([]rowErrorDTO, 0, len(res.Rejected)),
		Succeeded: commit.Succeeded,
		Failed:    commit.Failed,
	}
	for _, re := range res.Rejected {
		resp.Rejected = append(resp.Rejected, rowErrorDTO{Row: re.Row, Name: re.Name, Reason: re.Reason})
	}
	toJSON(w, http.StatusOK, resp)
}

func (s *Server) openingTemplate(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="opening-balances.csv"`)
	_, _ = w.Write([]byte(opening.Template()))
}
