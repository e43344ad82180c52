// Package opening maintains the set of per-ledger opening balances and their
// aggregate trial balance, including bulk import from tabular data.
package opening

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nexinvo/gstledger/internal/ledger"
)

// trialTolerance is the one-rupee tolerance of the trial-balance overview.
// Deliberately coarser than the per-voucher balance tolerance.
var trialTolerance = decimal.New(1, 0)

// Row is one parsed tabular row of an opening-balance import, amounts still
// raw strings.
type Row struct {
	Number     int
	LedgerName string
	Debit      string
	Credit     string
}

// ImportRecord is a normalized, accepted import row: one opening-balance
// patch for one ledger.
type ImportRecord struct {
	LedgerID    int64
	LedgerName  string
	Amount      decimal.Decimal
	BalanceType ledger.BalanceType
}

// RowError is a per-row import failure, keyed by row number and the raw
// name from the file. Accumulated, never fatal to the rest of the import.
type RowError struct {
	Row    int
	Name   string
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %s", e.Row, e.Name, e.Reason)
}

// ImportResult partitions an import into accepted and rejected rows. The
// caller inspects both lists; parsing itself never fails as a whole.
type ImportResult struct {
	Accepted []ImportRecord
	Rejected []RowError
}

// Summary renders the batch outcome, e.g. "12 parsed, 2 errors".
func (r ImportResult) Summary() string {
	return fmt.Sprintf("%d parsed, %d errors", len(r.Accepted), len(r.Rejected))
}

// ImportFromTable resolves each row against the current ledger set by
// case-insensitive exact name match. Rows with an unknown ledger or with
// both debit and credit set are rejected. Rows referencing the same ledger
// are NOT merged; each becomes an independent patch in Commit.
func ImportFromTable(rows []Row, accounts []ledger.LedgerAccount) ImportResult {
	byName := make(map[string]ledger.LedgerAccount, len(accounts))
	for _, a := range accounts {
		byName[strings.ToLower(strings.TrimSpace(a.Name))] = a
	}

	var res ImportResult
	for _, row := range rows {
		debit, err := parseAmount(row.Debit)
		if err != nil {
			res.Rejected = append(res.Rejected, RowError{Row: row.Number, Name: row.LedgerName, Reason: "Invalid debit amount"})
			continue
		}
		credit, err := parseAmount(row.Credit)
		if err != nil {
			res.Rejected = append(res.Rejected, RowError{Row: row.Number, Name: row.LedgerName, Reason: "Invalid credit amount"})
			continue
		}
		if !debit.IsZero() && !credit.IsZero() {
			res.Rejected = append(res.Rejected, RowError{Row: row.Number, Name: row.LedgerName, Reason: "Cannot have both debit and credit"})
			continue
		}
		acc, ok := byName[strings.ToLower(strings.TrimSpace(row.LedgerName))]
		if !ok {
			res.Rejected = append(res.Rejected, RowError{Row: row.Number, Name: row.LedgerName, Reason: "Ledger not found"})
			continue
		}
		rec := ImportRecord{LedgerID: acc.ID, LedgerName: acc.Name, Amount: debit, BalanceType: ledger.BalanceDr}
		if !credit.IsZero() {
			rec.Amount = credit
			rec.BalanceType = ledger.BalanceCr
		}
		res.Accepted = append(res.Accepted, rec)
	}
	return res
}

// parseAmount strips the currency symbol and thousands separators before
// numeric parsing. Empty cells count as zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// Records derives the opening-balance view: one record per account with a
// non-zero opening balance, split onto its side.
func Records(accounts []ledger.LedgerAccount) []ledger.OpeningBalanceRecord {
	out := make([]ledger.OpeningBalanceRecord, 0)
	for _, a := range accounts {
		if a.OpeningBalance.IsZero() {
			continue
		}
		rec := ledger.OpeningBalanceRecord{LedgerID: a.ID, LedgerName: a.Name, Group: a.Group}
		if a.OpeningBalanceType == ledger.BalanceCr {
			rec.CreditBalance = a.OpeningBalance
		} else {
			rec.DebitBalance = a.OpeningBalance
		}
		out = append(out, rec)
	}
	return out
}

// ComputeSummary aggregates the records into a trial balance. Pure.
func ComputeSummary(records []ledger.OpeningBalanceRecord) ledger.TrialBalanceSummary {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, r := range records {
		totalDebit = totalDebit.Add(r.DebitBalance)
		totalCredit = totalCredit.Add(r.CreditBalance)
	}
	diff := totalDebit.Sub(totalCredit)
	return ledger.TrialBalanceSummary{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  diff,
		Balanced:    diff.Abs().LessThan(trialTolerance),
	}
}

// BalanceUpdater issues one opening-balance patch.
type BalanceUpdater interface {
	UpdateOpeningBalance(ctx context.Context, id int64, amount decimal.Decimal, balType ledger.BalanceType) (ledger.LedgerAccount, error)
}

// CommitResult is the aggregate outcome of a bulk commit.
type CommitResult struct {
	Succeeded int
	Failed    int
}

// Commit applies the accepted records as independent per-ledger updates, in
// row order. A failure does not roll back prior updates and does not stop
// the loop: the commit is best-effort, not atomic, and the caller gets
// aggregate counts only.
func Commit(ctx context.Context, records []ImportRecord, updater BalanceUpdater) CommitResult {
	var res CommitResult
	for _, rec := range records {
		if _, err := updater.UpdateOpeningBalance(ctx, rec.LedgerID, rec.Amount, rec.BalanceType); err != nil {
			res.Failed++
			continue
		}
		res.Succeeded++
	}
	return res
}
