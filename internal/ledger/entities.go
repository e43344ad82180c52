package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nexinvo/gstledger/internal/meta"
)

// BalanceType represents the accounting position of a balance or entry.
type BalanceType string

const (
	// BalanceDr records a value on the debit side of an account.
	BalanceDr BalanceType = "Dr"
	// BalanceCr records a value on the credit side of an account.
	BalanceCr BalanceType = "Cr"
)

// AccountType enumerates the broad classification of a ledger account.
type AccountType string

const (
	AccountTypeBank      AccountType = "bank"
	AccountTypeCash      AccountType = "cash"
	AccountTypeDebtor    AccountType = "debtor"
	AccountTypeCreditor  AccountType = "creditor"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeTax       AccountType = "tax"
	AccountTypeStock     AccountType = "stock"
)

// ValidAccountType reports whether t is one of the known account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeBank, AccountTypeCash, AccountTypeDebtor, AccountTypeCreditor,
		AccountTypeIncome, AccountTypeExpense, AccountTypeAsset, AccountTypeLiability,
		AccountTypeEquity, AccountTypeTax, AccountTypeStock:
		return true
	}
	return false
}

// IsCashOrBank reports whether t can hold money movements for contra,
// payment and receipt vouchers.
func (t AccountType) IsCashOrBank() bool {
	return t == AccountTypeCash || t == AccountTypeBank
}

// IsParty reports whether t represents an external party (customer/supplier).
func (t AccountType) IsParty() bool {
	return t == AccountTypeDebtor || t == AccountTypeCreditor
}

// BankDetails holds the optional bank fields of a bank ledger account.
type BankDetails struct {
	BankName      string
	AccountNumber string
	IFSCCode      string
	Branch        string
}

// LedgerAccount is one node of the chart of accounts.
type LedgerAccount struct {
	ID    int64
	Name  string
	// Group is a slug identifying the account group (e.g. sundry_debtors).
	Group string
	Type  AccountType
	// OpeningBalance is the balance carried into the account at the start
	// of the financial year, before any vouchers are posted.
	OpeningBalance     decimal.Decimal
	OpeningBalanceType BalanceType
	CurrentBalance     decimal.Decimal
	CurrentBalanceType BalanceType
	IsBankAccount      bool
	// IsSystemAccount marks reserved built-ins that cannot be deleted or
	// have their type changed.
	IsSystemAccount bool
	Bank            BankDetails
	// Metadata holds additional key-value attributes for the account.
	Metadata meta.Metadata `json:"metadata,omitempty"`
	// Active indicates whether the account is active (soft-delete when false).
	Active bool
}

// VoucherType enumerates the kinds of vouchers the service accepts.
type VoucherType string

const (
	VoucherTypeContra     VoucherType = "contra"
	VoucherTypeJournal    VoucherType = "journal"
	VoucherTypeDebitNote  VoucherType = "debit_note"
	VoucherTypeCreditNote VoucherType = "credit_note"
	VoucherTypePayment    VoucherType = "payment"
	VoucherTypeReceipt    VoucherType = "receipt"
	// Sales and purchase vouchers are created by the invoicing flow, not
	// by the structured builders in this service.
	VoucherTypeSales    VoucherType = "sales"
	VoucherTypePurchase VoucherType = "purchase"
)

// ValidVoucherType reports whether t is one of the known voucher types.
func ValidVoucherType(t VoucherType) bool {
	switch t {
	case VoucherTypeContra, VoucherTypeJournal, VoucherTypeDebitNote,
		VoucherTypeCreditNote, VoucherTypePayment, VoucherTypeReceipt,
		VoucherTypeSales, VoucherTypePurchase:
		return true
	}
	return false
}

// VoucherStatus tracks the lifecycle of a voucher: draft -> submitted -> posted.
// Posted is terminal; posted vouchers can no longer be edited or deleted.
type VoucherStatus string

const (
	StatusDraft     VoucherStatus = "draft"
	StatusSubmitted VoucherStatus = "submitted"
	StatusPosted    VoucherStatus = "posted"
)

// VoucherEntry is one debit-or-credit line of a voucher, tied to one
// ledger account. At most one of Debit/Credit is non-zero.
type VoucherEntry struct {
	LedgerID  int64
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Narration string
}

// Voucher is one double-entry accounting document.
type Voucher struct {
	ID              uuid.UUID
	Type            VoucherType
	Date            time.Time
	Narration       string
	ReferenceNumber string
	Status          VoucherStatus
	// Entries keep insertion order; it matters for display only, the
	// accounting meaning is order-independent.
	Entries []VoucherEntry
	// Metadata holds additional key-value attributes for the voucher.
	Metadata meta.Metadata `json:"metadata,omitempty"`
}

// TotalAmount returns the debit total of the voucher, which for a balanced
// voucher equals the credit total.
func (v Voucher) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, e := range v.Entries {
		total = total.Add(e.Debit)
	}
	return total
}

// Editable reports whether the voucher may still be changed or deleted.
func (v Voucher) Editable() bool { return v.Status != StatusPosted }

// OpeningBalanceRecord is the derived per-account view used by the trial
// balance screen: one record per account with a non-zero opening balance,
// with the balance split onto its side.
type OpeningBalanceRecord struct {
	LedgerID      int64
	LedgerName    string
	Group         string
	DebitBalance  decimal.Decimal
	CreditBalance decimal.Decimal
}

// TrialBalanceSummary aggregates all opening-balance records.
//
// Balanced uses a one-rupee tolerance, deliberately coarser than the
// per-voucher tolerance: the trial balance is an overview, not an
// entry-level check.
type TrialBalanceSummary struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	// Difference is signed: TotalDebit - TotalCredit.
	Difference decimal.Decimal
	Balanced   bool
}

// Client is a customer record of the business.
type Client struct {
	ID     int64
	Name   string
	// Code is server-generated when left blank at creation.
	Code      string
	Email     string
	Phone     string
	Mobile    string
	Address   string
	City      string
	State     string
	PINCode   string
	StateCode string
	GSTIN     string
	PAN       string
	DateOfBirth         *time.Time
	DateOfIncorporation *time.Time
}

// FinancialYear is the Indian accounting period: 1 April to 31 March.
type FinancialYear struct {
	Start time.Time
	End   time.Time
}

// Label returns the conventional "2025-26" style label.
func (fy FinancialYear) Label() string {
	return fy.Start.Format("2006") + "-" + fy.End.Format("06")
}

// CurrentFinancialYear derives the financial year containing now.
func CurrentFinancialYear(now time.Time) FinancialYear {
	year := now.Year()
	if now.Month() < time.April {
		year--
	}
	return FinancialYear{
		Start: time.Date(year, time.April, 1, 0, 0, 0, 0, now.Location()),
		End:   time.Date(year+1, time.March, 31, 0, 0, 0, 0, now.Location()),
	}
}
