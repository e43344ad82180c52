package voucher

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nexinvo/gstledger/internal/ledger"
)

// balanceTolerance absorbs floating-point summation drift on two-decimal
// currency values. It does not permit real imbalance.
var balanceTolerance = decimal.New(1, -2) // 0.01

// BalanceResult is the outcome of the double-entry check on a candidate
// voucher. It is pure data; callers decide what to do with it.
type BalanceResult struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	// Difference is |TotalDebit - TotalCredit|.
	Difference decimal.Decimal
	Balanced   bool
}

// CheckBalance sums the debit and credit sides of the entries and decides
// whether they balance within the tolerance. It is side-effect-free and
// idempotent: the same entry list always yields the same verdict.
func CheckBalance(entries []ledger.VoucherEntry) BalanceResult {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}
	diff := totalDebit.Sub(totalCredit).Abs()
	return BalanceResult{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  diff,
		Balanced:    diff.LessThan(balanceTolerance),
	}
}

// MismatchMessage formats both totals to two decimals for display.
func (r BalanceResult) MismatchMessage() string {
	return fmt.Sprintf("debits (%s) do not match credits (%s)",
		r.TotalDebit.StringFixed(2), r.TotalCredit.StringFixed(2))
}
