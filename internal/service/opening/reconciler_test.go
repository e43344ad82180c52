package opening

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexinvo/gstledger/internal/ledger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testAccounts() []ledger.LedgerAccount {
	return []ledger.LedgerAccount{
		{ID: 1, Name: "Cash in Hand", Group: "cash_in_hand", Type: ledger.AccountTypeCash, Active: true},
		{ID: 2, Name: "HDFC Bank", Group: "bank_accounts", Type: ledger.AccountTypeBank, Active: true},
		{ID: 3, Name: "Capital Account", Group: "capital_account", Type: ledger.AccountTypeEquity, Active: true},
	}
}

func TestImportFromTable(t *testing.T) {
	rows := []Row{
		{Number: 2, LedgerName: "Cash in Hand", Debit: "50000", Credit: "0"},
		{Number: 3, LedgerName: "Unknown Ledger", Debit: "100", Credit: "0"},
		{Number: 4, LedgerName: "HDFC Bank", Debit: "100", Credit: "50"},
		{Number: 5, LedgerName: "capital account", Debit: "0", Credit: "₹2,00,000"},
	}
	res := ImportFromTable(rows, testAccounts())

	require.Len(t, res.Accepted, 2)
	require.Len(t, res.Rejected, 2)
	assert.Equal(t, "2 parsed, 2 errors", res.Summary())

	assert.Equal(t, int64(1), res.Accepted[0].LedgerID)
	assert.True(t, res.Accepted[0].Amount.Equal(d("50000")))
	assert.Equal(t, ledger.BalanceDr, res.Accepted[0].BalanceType)

	// name match is case-insensitive, currency symbol and commas stripped
	assert.Equal(t, int64(3), res.Accepted[1].LedgerID)
	assert.True(t, res.Accepted[1].Amount.Equal(d("200000")))
	assert.Equal(t, ledger.BalanceCr, res.Accepted[1].BalanceType)

	assert.Equal(t, 3, res.Rejected[0].Row)
	assert.Equal(t, "Unknown Ledger", res.Rejected[0].Name)
	assert.Equal(t, "Ledger not found", res.Rejected[0].Reason)
	assert.Equal(t, "Cannot have both debit and credit", res.Rejected[1].Reason)
}

func TestImportFromTable_DuplicateRowsNotMerged(t *testing.T) {
	rows := []Row{
		{Number: 2, LedgerName: "Cash in Hand", Debit: "100", Credit: ""},
		{Number: 3, LedgerName: "Cash in Hand", Debit: "200", Credit: ""},
	}
	res := ImportFromTable(rows, testAccounts())
	require.Len(t, res.Accepted, 2)
	assert.Equal(t, res.Accepted[0].LedgerID, res.Accepted[1].LedgerID)
	assert.True(t, res.Accepted[1].Amount.Equal(d("200")))
}

func TestImportFromTable_InvalidAmount(t *testing.T) {
	rows := []Row{{Number: 2, LedgerName: "Cash in Hand", Debit: "abc", Credit: ""}}
	res := ImportFromTable(rows, testAccounts())
	require.Empty(t, res.Accepted)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, "Invalid debit amount", res.Rejected[0].Reason)
}

func TestRecords(t *testing.T) {
	accs := testAccounts()
	accs[0].OpeningBalance = d("50000")
	accs[0].OpeningBalanceType = ledger.BalanceDr
	accs[2].OpeningBalance = d("45000")
	accs[2].OpeningBalanceType = ledger.BalanceCr
	// accs[1] stays zero and must not appear

	recs := Records(accs)
	require.Len(t, recs, 2)
	assert.True(t, recs[0].DebitBalance.Equal(d("50000")))
	assert.True(t, recs[0].CreditBalance.IsZero())
	assert.True(t, recs[1].CreditBalance.Equal(d("45000")))
	assert.True(t, recs[1].DebitBalance.IsZero())
}

func TestComputeSummary(t *testing.T) {
	recs := []ledger.OpeningBalanceRecord{
		{LedgerID: 1, DebitBalance: d("50000")},
		{LedgerID: 3, CreditBalance: d("45000")},
	}
	sum := ComputeSummary(recs)
	assert.True(t, sum.TotalDebit.Equal(d("50000")))
	assert.True(t, sum.TotalCredit.Equal(d("45000")))
	assert.True(t, sum.Difference.Equal(d("5000")), "difference is signed debit minus credit")
	assert.False(t, sum.Balanced)
}

func TestComputeSummary_OneRupeeTolerance(t *testing.T) {
	recs := []ledger.OpeningBalanceRecord{
		{LedgerID: 1, DebitBalance: d("1000.50")},
		{LedgerID: 3, CreditBalance: d("1000")},
	}
	sum := ComputeSummary(recs)
	assert.True(t, sum.Balanced, "sub-rupee difference counts as balanced on the overview")
	assert.True(t, sum.Difference.Equal(d("0.50")))

	recs[0].DebitBalance = d("1001")
	sum = ComputeSummary(recs)
	assert.False(t, sum.Balanced, "a full rupee off is not balanced")
}

type fakeUpdater struct {
	calls  []int64
	failOn int64
}

func (f *fakeUpdater) UpdateOpeningBalance(_ context.Context, id int64, _ decimal.Decimal, _ ledger.BalanceType) (ledger.LedgerAccount, error) {
	f.calls = append(f.calls, id)
	if id == f.failOn {
		return ledger.LedgerAccount{}, errors.New("boom")
	}
	return ledger.LedgerAccount{ID: id}, nil
}

func TestCommit_SequentialBestEffort(t *testing.T) {
	recs := []ImportRecord{
		{LedgerID: 1, Amount: d("10"), BalanceType: ledger.BalanceDr},
		{LedgerID: 2, Amount: d("20"), BalanceType: ledger.BalanceDr},
		{LedgerID: 3, Amount: d("30"), BalanceType: ledger.BalanceCr},
	}
	up := &fakeUpdater{failOn: 2}
	res := Commit(context.Background(), recs, up)

	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	// row order preserved, failure does not stop the loop
	assert.Equal(t, []int64{1, 2, 3}, up.calls)
}
