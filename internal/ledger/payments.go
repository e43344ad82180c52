package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentKind separates money received from money paid out.
type PaymentKind string

const (
	// KindReceipt is money received from a client.
	KindReceipt PaymentKind = "receipt"
	// KindPayment is money paid out against an expense.
	KindPayment PaymentKind = "payment"
)

// Payment is a receipt or expense payment record. It exists independently of
// the ledger: when accounting is not configured the record is still saved as
// a non-accounting transaction and no voucher is created.
type Payment struct {
	ID   int64
	Kind PaymentKind
	Date time.Time
	// ClientID is set for receipts.
	ClientID int64
	// PayeeName is set for expense payments.
	PayeeName        string
	CashBankLedgerID int64
	// CounterLedgerID is the expense ledger for payments and the client's
	// party ledger for receipts.
	CounterLedgerID int64
	Amount          decimal.Decimal
	TDSAmount       decimal.Decimal
	GSTTDSAmount    decimal.Decimal
	// AmountReceived is Amount - TDSAmount - GSTTDSAmount, recomputed
	// whenever any of the three changes. Negative results are permitted.
	AmountReceived  decimal.Decimal
	PostToLedger    bool
	VoucherID       *uuid.UUID
	Narration       string
	ReferenceNumber string
}

// RecalculateAmountReceived refreshes the derived net amount.
func (p *Payment) RecalculateAmountReceived() {
	p.AmountReceived = p.Amount.Sub(p.TDSAmount).Sub(p.GSTTDSAmount)
}

// ReminderStatus tracks a payment reminder's lifecycle.
type ReminderStatus string

const (
	ReminderScheduled ReminderStatus = "scheduled"
	ReminderSent      ReminderStatus = "sent"
	ReminderCancelled ReminderStatus = "cancelled"
)

// Reminder is one scheduled payment reminder for an outstanding invoice.
type Reminder struct {
	ID         int64
	ClientID   int64
	InvoiceRef string
	DueDate    time.Time
	Amount     decimal.Decimal
	Status     ReminderStatus
	SentAt     *time.Time
}

// ReminderSettings controls automatic reminder scheduling.
type ReminderSettings struct {
	Enabled    bool
	DaysBefore int
}

// PendingInvoice is the derived view of a receivable awaiting payment.
type PendingInvoice struct {
	ClientID    int64
	ClientName  string
	InvoiceRef  string
	DueDate     time.Time
	Outstanding decimal.Decimal
}
