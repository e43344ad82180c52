package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nexinvo/gstledger/internal/ledger"
	"github.com/nexinvo/gstledger/internal/meta"
)

// dateLayout is the wire format for accounting dates. Vouchers carry dates,
// not instants.
const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// --- accounts ---

type accountRequest struct {
	Name               string            `json:"name"`
	Group              string            `json:"group"`
	Type               string            `json:"account_type"`
	OpeningBalance     decimal.Decimal   `json:"opening_balance"`
	OpeningBalanceType string            `json:"opening_balance_type"`
	BankName           string            `json:"bank_name,omitempty"`
	BankAccountNumber  string            `json:"bank_account_number,omitempty"`
	BankIFSC           string            `json:"bank_ifsc,omitempty"`
	BankBranch         string            `json:"bank_branch,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}

func toAccountDomain(req accountRequest) ledger.LedgerAccount {
	return ledger.LedgerAccount{
		Name:               req.Name,
		Group:              req.Group,
		Type:               ledger.AccountType(req.Type),
		OpeningBalance:     req.OpeningBalance,
		OpeningBalanceType: ledger.BalanceType(req.OpeningBalanceType),
		Bank: ledger.BankDetails{
			BankName:      req.BankName,
			AccountNumber: req.BankAccountNumber,
			IFSCCode:      req.BankIFSC,
			Branch:        req.BankBranch,
		},
		Metadata: meta.New(req.Metadata),
	}
}

type accountResponse struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	Group              string            `json:"group"`
	Type               string            `json:"account_type"`
	OpeningBalance     decimal.Decimal   `json:"opening_balance"`
	OpeningBalanceType string            `json:"opening_balance_type"`
	CurrentBalance     decimal.Decimal   `json:"current_balance"`
	CurrentBalanceType string            `json:"current_balance_type"`
	IsBankAccount      bool              `json:"is_bank_account"`
	IsSystemAccount    bool              `json:"is_system_account"`
	BankName           string            `json:"bank_name,omitempty"`
	BankAccountNumber  string            `json:"bank_account_number,omitempty"`
	BankIFSC           string            `json:"bank_ifsc,omitempty"`
	BankBranch         string            `json:"bank_branch,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	Active             bool              `json:"active"`
}

func toAccountResponse(a ledger.LedgerAccount) accountResponse {
	return accountResponse{
		ID:                 a.ID,
		Name:               a.Name,
		Group:              a.Group,
		Type:               string(a.Type),
		OpeningBalance:     a.OpeningBalance,
		OpeningBalanceType: string(a.OpeningBalanceType),
		CurrentBalance:     a.CurrentBalance,
		CurrentBalanceType: string(a.CurrentBalanceType),
		IsBankAccount:      a.IsBankAccount,
		IsSystemAccount:    a.IsSystemAccount,
		BankName:           a.Bank.BankName,
		BankAccountNumber:  a.Bank.AccountNumber,
		BankIFSC:           a.Bank.IFSCCode,
		BankBranch:         a.Bank.Branch,
		Metadata:           a.Metadata.Clone(),
		Active:             a.Active,
	}
}

type openingBalanceRequest struct {
	OpeningBalance     decimal.Decimal `json:"opening_balance"`
	OpeningBalanceType string          `json:"opening_balance_type"`
}

// --- vouchers ---

type voucherEntryDTO struct {
	LedgerID  int64           `json:"ledger_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Narration string          `json:"narration,omitempty"`
}

type voucherRequest struct {
	Type            string            `json:"voucher_type"`
	Date            string            `json:"voucher_date"`
	Narration       string            `json:"narration,omitempty"`
	ReferenceNumber string            `json:"reference_number,omitempty"`
	Entries         []voucherEntryDTO `json:"entries"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

func toVoucherDomain(req voucherRequest) (ledger.Voucher, error) {
	var date time.Time
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			return ledger.Voucher{}, err
		}
		date = d
	}
	entries := make([]ledger.VoucherEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, ledger.VoucherEntry{
			LedgerID:  e.LedgerID,
			Debit:     e.Debit,
			Credit:    e.Credit,
			Narration: e.Narration,
		})
	}
	return ledger.Voucher{
		Type:            ledger.VoucherType(req.Type),
		Date:            date,
		Narration:       req.Narration,
		ReferenceNumber: req.ReferenceNumber,
		Entries:         entries,
		Metadata:        meta.New(req.Metadata),
	}, nil
}

type voucherResponse struct {
	ID              uuid.UUID         `json:"id"`
	Type            string            `json:"voucher_type"`
	Date            string            `json:"voucher_date"`
	Narration       string            `json:"narration,omitempty"`
	ReferenceNumber string            `json:"reference_number,omitempty"`
	Status          string            `json:"status"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	Entries         []voucherEntryDTO `json:"entries"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

func toVoucherResponse(v ledger.Voucher) voucherResponse {
	entries := make([]voucherEntryDTO, 0, len(v.Entries))
	for _, e := range v.Entries {
		entries = append(entries, voucherEntryDTO{
			LedgerID:  e.LedgerID,
			Debit:     e.Debit,
			Credit:    e.Credit,
			Narration: e.Narration,
		})
	}
	return voucherResponse{
		ID:              v.ID,
		Type:            string(v.Type),
		Date:            formatDate(v.Date),
		Narration:       v.Narration,
		ReferenceNumber: v.ReferenceNumber,
		Status:          string(v.Status),
		TotalAmount:     v.TotalAmount(),
		Entries:         entries,
		Metadata:        v.Metadata.Clone(),
	}
}

// --- clients ---

type clientRequest struct {
	Name                string `json:"name"`
	Code                string `json:"code,omitempty"`
	Email               string `json:"email"`
	Phone               string `json:"phone,omitempty"`
	Mobile              string `json:"mobile,omitempty"`
	Address             string `json:"address,omitempty"`
	City                string `json:"city,omitempty"`
	State               string `json:"state,omitempty"`
	PINCode             string `json:"pin_code,omitempty"`
	StateCode           string `json:"state_code,omitempty"`
	GSTIN               string `json:"gstin,omitempty"`
	PAN                 string `json:"pan,omitempty"`
	DateOfBirth         string `json:"date_of_birth,omitempty"`
	DateOfIncorporation string `json:"date_of_incorporation,omitempty"`
}

func toClientDomain(req clientRequest) (ledger.Client, error) {
	c := ledger.Client{
		Name:      req.Name,
		Code:      req.Code,
		Email:     req.Email,
		Phone:     req.Phone,
		Mobile:    req.Mobile,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		PINCode:   req.PINCode,
		StateCode: req.StateCode,
		GSTIN:     req.GSTIN,
		PAN:       req.PAN,
	}
	if req.DateOfBirth != "" {
		t, err := parseDate(req.DateOfBirth)
		if err != nil {
			return ledger.Client{}, err
		}
		c.DateOfBirth = &t
	}
	if req.DateOfIncorporation != "" {
		t, err := parseDate(req.DateOfIncorporation)
		if err != nil {
			return ledger.Client{}, err
		}
		c.DateOfIncorporation = &t
	}
	return c, nil
}

type clientResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Code                string `json:"code"`
	Email               string `json:"email"`
	Phone               string `json:"phone,omitempty"`
	Mobile              string `json:"mobile,omitempty"`
	Address             string `json:"address,omitempty"`
	City                string `json:"city,omitempty"`
	State               string `json:"state,omitempty"`
	PINCode             string `json:"pin_code,omitempty"`
	StateCode           string `json:"state_code,omitempty"`
	GSTIN               string `json:"gstin,omitempty"`
	PAN                 string `json:"pan,omitempty"`
	DateOfBirth         string `json:"date_of_birth,omitempty"`
	DateOfIncorporation string `json:"date_of_incorporation,omitempty"`
}

func toClientResponse(c ledger.Client) clientResponse {
	resp := clientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Code:      c.Code,
		Email:     c.Email,
		Phone:     c.Phone,
		Mobile:    c.Mobile,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		PINCode:   c.PINCode,
		StateCode: c.StateCode,
		GSTIN:     c.GSTIN,
		PAN:       c.PAN,
	}
	if c.DateOfBirth != nil {
		resp.DateOfBirth = formatDate(*c.DateOfBirth)
	}
	if c.DateOfIncorporation != nil {
		resp.DateOfIncorporation = formatDate(*c.DateOfIncorporation)
	}
	return resp
}

// --- payments ---

type paymentRequest struct {
	Date             string          `json:"date"`
	ClientID         int64           `json:"client_id,omitempty"`
	PayeeName        string          `json:"payee_name,omitempty"`
	CashBankLedgerID int64           `json:"cash_bank_ledger_id"`
	CounterLedgerID  int64           `json:"counter_ledger_id"`
	Amount           decimal.Decimal `json:"amount"`
	TDSAmount        decimal.Decimal `json:"tds_amount"`
	GSTTDSAmount     decimal.Decimal `json:"gst_tds_amount"`
	PostToLedger     bool            `json:"post_to_ledger"`
	Narration        string          `json:"narration,omitempty"`
	ReferenceNumber  string          `json:"reference_number,omitempty"`
}

func toPaymentDomain(req paymentRequest, kind ledger.PaymentKind) (ledger.Payment, error) {
	var date time.Time
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			return ledger.Payment{}, err
		}
		date = d
	}
	return ledger.Payment{
		Kind:             kind,
		Date:             date,
		ClientID:         req.ClientID,
		PayeeName:        req.PayeeName,
		CashBankLedgerID: req.CashBankLedgerID,
		CounterLedgerID:  req.CounterLedgerID,
		Amount:           req.Amount,
		TDSAmount:        req.TDSAmount,
		GSTTDSAmount:     req.GSTTDSAmount,
		PostToLedger:     req.PostToLedger,
		Narration:        req.Narration,
		ReferenceNumber:  req.ReferenceNumber,
	}, nil
}

type paymentResponse struct {
	ID               int64           `json:"id"`
	Kind             string          `json:"kind"`
	Date             string          `json:"date"`
	ClientID         int64           `json:"client_id,omitempty"`
	PayeeName        string          `json:"payee_name,omitempty"`
	CashBankLedgerID int64           `json:"cash_bank_ledger_id"`
	CounterLedgerID  int64           `json:"counter_ledger_id"`
	Amount           decimal.Decimal `json:"amount"`
	TDSAmount        decimal.Decimal `json:"tds_amount"`
	GSTTDSAmount     decimal.Decimal `json:"gst_tds_amount"`
	AmountReceived   decimal.Decimal `json:"amount_received"`
	PostToLedger     bool            `json:"post_to_ledger"`
	VoucherID        *uuid.UUID      `json:"voucher_id,omitempty"`
	Narration        string          `json:"narration,omitempty"`
	ReferenceNumber  string          `json:"reference_number,omitempty"`
}

func toPaymentResponse(p ledger.Payment) paymentResponse {
	return paymentResponse{
		ID:               p.ID,
		Kind:             string(p.Kind),
		Date:             formatDate(p.Date),
		ClientID:         p.ClientID,
		PayeeName:        p.PayeeName,
		CashBankLedgerID: p.CashBankLedgerID,
		CounterLedgerID:  p.CounterLedgerID,
		Amount:           p.Amount,
		TDSAmount:        p.TDSAmount,
		GSTTDSAmount:     p.GSTTDSAmount,
		AmountReceived:   p.AmountReceived,
		PostToLedger:     p.PostToLedger,
		VoucherID:        p.VoucherID,
		Narration:        p.Narration,
		ReferenceNumber:  p.ReferenceNumber,
	}
}

// --- opening balances / trial balance ---

type openingRecordDTO struct {
	LedgerID      int64           `json:"ledger_id"`
	LedgerName    string          `json:"ledger_name"`
	Group         string          `json:"group"`
	DebitBalance  decimal.Decimal `json:"debit_balance"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
}

type trialBalanceResponse struct {
	Records     []openingRecordDTO `json:"records"`
	TotalDebit  decimal.Decimal    `json:"total_debit"`
	TotalCredit decimal.Decimal    `json:"total_credit"`
	Difference  decimal.Decimal    `json:"difference"`
	Balanced    bool               `json:"balanced"`
}

type rowErrorDTO struct {
	Row    int    `json:"row"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type importResponse struct {
	Summary   string        `json:"summary"`
	Accepted  int           `json:"accepted"`
	Rejected  []rowErrorDTO `json:"rejected"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
}

// --- reminders ---

type reminderRequest struct {
	ClientID   int64           `json:"client_id"`
	InvoiceRef string          `json:"invoice_ref,omitempty"`
	DueDate    string          `json:"due_date"`
	Amount     decimal.Decimal `json:"amount"`
}

type reminderResponse struct {
	ID         int64           `json:"id"`
	ClientID   int64           `json:"client_id"`
	InvoiceRef string          `json:"invoice_ref,omitempty"`
	DueDate    string          `json:"due_date"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	SentAt     *time.Time      `json:"sent_at,omitempty"`
}

func toReminderResponse(r ledger.Reminder) reminderResponse {
	return reminderResponse{
		ID:         r.ID,
		ClientID:   r.ClientID,
		InvoiceRef: r.InvoiceRef,
		DueDate:    formatDate(r.DueDate),
		Amount:     r.Amount,
		Status:     string(r.Status),
		SentAt:     r.SentAt,
	}
}

type pendingInvoiceDTO struct {
	ClientID    int64           `json:"client_id"`
	ClientName  string          `json:"client_name"`
	InvoiceRef  string          `json:"invoice_ref"`
	DueDate     string          `json:"due_date"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

type reminderSettingsDTO struct {
	Enabled    bool `json:"enabled"`
	DaysBefore int  `json:"days_before"`
}

type bulkResultDTO struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

type idListRequest struct {
	IDs []int64 `json:"ids"`
}
