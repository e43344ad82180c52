package voucher

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nexinvo/gstledger/internal/ledger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCheckBalance(t *testing.T) {
	tests := []struct {
		name        string
		entries     []ledger.VoucherEntry
		wantBal     bool
		wantDebit   string
		wantCredit  string
		wantDiff    string
	}{
		{
			name: "balanced pair",
			entries: []ledger.VoucherEntry{
				{LedgerID: 1, Debit: d("500")},
				{LedgerID: 2, Credit: d("500")},
			},
			wantBal: true, wantDebit: "500", wantCredit: "500", wantDiff: "0",
		},
		{
			name: "unbalanced",
			entries: []ledger.VoucherEntry{
				{LedgerID: 1, Debit: d("1500")},
				{LedgerID: 2, Credit: d("1400")},
			},
			wantBal: false, wantDebit: "1500", wantCredit: "1400", wantDiff: "100",
		},
		{
			name: "rounding drift inside tolerance",
			entries: []ledger.VoucherEntry{
				{LedgerID: 1, Debit: d("100.005")},
				{LedgerID: 2, Credit: d("100")},
			},
			wantBal: true, wantDebit: "100.005", wantCredit: "100", wantDiff: "0.005",
		},
		{
			name: "exactly one paisa off is not balanced",
			entries: []ledger.VoucherEntry{
				{LedgerID: 1, Debit: d("100.01")},
				{LedgerID: 2, Credit: d("100")},
			},
			wantBal: false, wantDebit: "100.01", wantCredit: "100", wantDiff: "0.01",
		},
		{
			name:    "empty list has zero totals",
			entries: nil,
			wantBal: true, wantDebit: "0", wantCredit: "0", wantDiff: "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckBalance(tt.entries)
			assert.Equal(t, tt.wantBal, res.Balanced)
			assert.True(t, res.TotalDebit.Equal(d(tt.wantDebit)), "debit %s", res.TotalDebit)
			assert.True(t, res.TotalCredit.Equal(d(tt.wantCredit)), "credit %s", res.TotalCredit)
			assert.True(t, res.Difference.Equal(d(tt.wantDiff)), "diff %s", res.Difference)
		})
	}
}

func TestCheckBalance_Idempotent(t *testing.T) {
	entries := []ledger.VoucherEntry{
		{LedgerID: 1, Debit: d("123.45")},
		{LedgerID: 2, Credit: d("100")},
		{LedgerID: 3, Credit: d("23.45")},
	}
	first := CheckBalance(entries)
	second := CheckBalance(entries)
	assert.Equal(t, first.Balanced, second.Balanced)
	assert.True(t, first.TotalDebit.Equal(second.TotalDebit))
	assert.True(t, first.TotalCredit.Equal(second.TotalCredit))
	assert.True(t, first.Difference.Equal(second.Difference))
}

func TestBalanceResult_MismatchMessage(t *testing.T) {
	res := CheckBalance([]ledger.VoucherEntry{
		{LedgerID: 1, Debit: d("1500")},
		{LedgerID: 2, Credit: d("1400.5")},
	})
	assert.Equal(t, "debits (1500.00) do not match credits (1400.50)", res.MismatchMessage())
}
