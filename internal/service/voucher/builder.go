package voucher

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nexinvo/gstledger/internal/ledger"
)

// ValidationError is a local input error: it never reaches the network and
// the caller must correct the input before resubmitting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NameResolver resolves ledger account names for narration composition.
type NameResolver interface {
	AccountName(id int64) (string, bool)
}

// ContraInput describes a transfer between two of the business's own
// cash/bank accounts.
type ContraInput struct {
	FromAccount int64
	ToAccount   int64
	Amount      decimal.Decimal
	Date        time.Time
	Narration   string
	Reference   string
}

// BuildContra produces a two-entry voucher: debit the destination, credit
// the source. When no narration is supplied, one is composed from the
// account names.
func BuildContra(in ContraInput, names NameResolver) (ledger.Voucher, error) {
	if in.FromAccount == 0 {
		return ledger.Voucher{}, invalid("from_account", "account is required")
	}
	if in.ToAccount == 0 {
		return ledger.Voucher{}, invalid("to_account", "account is required")
	}
	if in.FromAccount == in.ToAccount {
		return ledger.Voucher{}, invalid("to_account", "from and to accounts must differ")
	}
	if !in.Amount.IsPositive() {
		return ledger.Voucher{}, invalid("amount", "amount must be greater than zero")
	}
	narration := in.Narration
	if narration == "" {
		fromName, _ := names.AccountName(in.FromAccount)
		toName, _ := names.AccountName(in.ToAccount)
		narration = fmt.Sprintf("Transfer from %s to %s", fromName, toName)
	}
	return ledger.Voucher{
		Type:            ledger.VoucherTypeContra,
		Date:            in.Date,
		Narration:       narration,
		ReferenceNumber: in.Reference,
		Status:          ledger.StatusDraft,
		Entries: []ledger.VoucherEntry{
			{LedgerID: in.ToAccount, Debit: in.Amount},
			{LedgerID: in.FromAccount, Credit: in.Amount},
		},
	}, nil
}

// JournalLine is one free-form line of a journal voucher under construction.
type JournalLine struct {
	LedgerID  int64
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Narration string
}

// SetDebit applies the mutual-exclusivity rule at the point of input:
// a non-zero debit clears the line's credit.
func (l *JournalLine) SetDebit(amount decimal.Decimal) {
	l.Debit = amount
	if !amount.IsZero() {
		l.Credit = decimal.Zero
	}
}

// SetCredit mirrors SetDebit for the credit side.
func (l *JournalLine) SetCredit(amount decimal.Decimal) {
	l.Credit = amount
	if !amount.IsZero() {
		l.Debit = decimal.Zero
	}
}

// JournalInput describes a free-form journal voucher.
type JournalInput struct {
	Lines     []JournalLine
	Date      time.Time
	Narration string
	Reference string
}

// RemoveLine drops the line at index i, refusing to go below the two-line
// minimum of a journal voucher.
func (in *JournalInput) RemoveLine(i int) error {
	if len(in.Lines) <= 2 {
		return invalid("entries", "a journal voucher needs at least 2 entries")
	}
	if i < 0 || i >= len(in.Lines) {
		return invalid("entries", "no such entry")
	}
	in.Lines = append(in.Lines[:i], in.Lines[i+1:]...)
	return nil
}

// BuildJournal validates the lines and produces the candidate voucher.
func BuildJournal(in JournalInput) (ledger.Voucher, error) {
	if len(in.Lines) < 2 {
		return ledger.Voucher{}, invalid("entries", "a journal voucher needs at least 2 entries")
	}
	entries := make([]ledger.VoucherEntry, 0, len(in.Lines))
	for i, l := range in.Lines {
		if l.LedgerID == 0 {
			return ledger.Voucher{}, invalid(fmt.Sprintf("entries[%d].ledger", i), "ledger is required")
		}
		hasDebit := !l.Debit.IsZero()
		hasCredit := !l.Credit.IsZero()
		if !hasDebit && !hasCredit {
			return ledger.Voucher{}, invalid(fmt.Sprintf("entries[%d]", i), "either debit or credit must be set")
		}
		if hasDebit && hasCredit {
			return ledger.Voucher{}, invalid(fmt.Sprintf("entries[%d]", i), "cannot have both debit and credit")
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return ledger.Voucher{}, invalid(fmt.Sprintf("entries[%d]", i), "amount must not be negative")
		}
		entries = append(entries, ledger.VoucherEntry{
			LedgerID:  l.LedgerID,
			Debit:     l.Debit,
			Credit:    l.Credit,
			Narration: l.Narration,
		})
	}
	res := CheckBalance(entries)
	if res.TotalDebit.IsZero() {
		return ledger.Voucher{}, invalid("entries", "total debit must be greater than zero")
	}
	if !res.Balanced {
		return ledger.Voucher{}, invalid("entries", res.MismatchMessage())
	}
	return ledger.Voucher{
		Type:            ledger.VoucherTypeJournal,
		Date:            in.Date,
		Narration:       in.Narration,
		ReferenceNumber: in.Reference,
		Status:          ledger.StatusDraft,
		Entries:         entries,
	}, nil
}

// NoteInput describes a debit or credit note: an adjustment between a party
// ledger and a reason (income/expense) ledger.
type NoteInput struct {
	PartyLedger  int64
	ReasonLedger int64
	Amount       decimal.Decimal
	Date         time.Time
	Narration    string
	Reference    string
}

func (in NoteInput) validate() error {
	if in.PartyLedger == 0 {
		return invalid("party_ledger", "party ledger is required")
	}
	if in.ReasonLedger == 0 {
		return invalid("reason_ledger", "reason ledger is required")
	}
	if !in.Amount.IsPositive() {
		return invalid("amount", "amount must be greater than zero")
	}
	return nil
}

// BuildDebitNote debits the party and credits the reason ledger, reducing a
// payable. The polarity is the exact opposite of a credit note.
func BuildDebitNote(in NoteInput, names NameResolver) (ledger.Voucher, error) {
	if err := in.validate(); err != nil {
		return ledger.Voucher{}, err
	}
	narration := in.Narration
	if narration == "" {
		partyName, _ := names.AccountName(in.PartyLedger)
		narration = fmt.Sprintf("Debit note against %s", partyName)
	}
	return ledger.Voucher{
		Type:            ledger.VoucherTypeDebitNote,
		Date:            in.Date,
		Narration:       narration,
		ReferenceNumber: in.Reference,
		Status:          ledger.StatusDraft,
		Entries: []ledger.VoucherEntry{
			{LedgerID: in.PartyLedger, Debit: in.Amount},
			{LedgerID: in.ReasonLedger, Credit: in.Amount},
		},
	}, nil
}

// BuildCreditNote debits the reason ledger and credits the party, reducing a
// receivable.
func BuildCreditNote(in NoteInput, names NameResolver) (ledger.Voucher, error) {
	if err := in.validate(); err != nil {
		return ledger.Voucher{}, err
	}
	narration := in.Narration
	if narration == "" {
		partyName, _ := names.AccountName(in.PartyLedger)
		narration = fmt.Sprintf("Credit note against %s", partyName)
	}
	return ledger.Voucher{
		Type:            ledger.VoucherTypeCreditNote,
		Date:            in.Date,
		Narration:       narration,
		ReferenceNumber: in.Reference,
		Status:          ledger.StatusDraft,
		Entries: []ledger.VoucherEntry{
			{LedgerID: in.ReasonLedger, Debit: in.Amount},
			{LedgerID: in.PartyLedger, Credit: in.Amount},
		},
	}, nil
}

// MoneyInput describes a payment or receipt voucher: a cash/bank account on
// one side and a counter ledger on the other.
type MoneyInput struct {
	CashBankLedger int64
	CounterLedger  int64
	Amount         decimal.Decimal
	Date           time.Time
	Narration      string
	Reference      string
}

func (in MoneyInput) validate() error {
	if in.CashBankLedger == 0 {
		return invalid("cash_bank_ledger", "cash/bank ledger is required")
	}
	if in.CounterLedger == 0 {
		return invalid("counter_ledger", "counter ledger is required")
	}
	if !in.Amount.IsPositive() {
		return invalid("amount", "amount must be greater than zero")
	}
	return nil
}

// BuildPayment debits the counter (expense) ledger and credits the
// cash/bank account.
func BuildPayment(in MoneyInput) (ledger.Voucher, error) {
	if err := in.validate(); err != nil {
		return ledger.Voucher{}, err
	}
	return ledger.Voucher{
		Type:            ledger.VoucherTypePayment,
		Date:            in.Date,
		Narration:       in.Narration,
		ReferenceNumber: in.Reference,
		Status:          ledger.StatusDraft,
		Entries: []ledger.VoucherEntry{
			{LedgerID: in.CounterLedger, Debit: in.Amount},
			{LedgerID: in.CashBankLedger, Credit: in.Amount},
		},
	}, nil
}

// BuildReceipt debits the cash/bank account and credits the counter
// (client) ledger.
func BuildReceipt(in MoneyInput) (ledger.Voucher, error) {
	if err := in.validate(); err != nil {
		return ledger.Voucher{}, err
	}
	return ledger.Voucher{
		Type:            ledger.VoucherTypeReceipt,
		Date:            in.Date,
		Narration:       in.Narration,
		ReferenceNumber: in.Reference,
		Status:          ledger.StatusDraft,
		Entries: []ledger.VoucherEntry{
			{LedgerID: in.CashBankLedger, Debit: in.Amount},
			{LedgerID: in.CounterLedger, Credit: in.Amount},
		},
	}, nil
}
