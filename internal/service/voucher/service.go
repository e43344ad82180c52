package voucher

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nexinvo/gstledger/internal/errs"
	"github.com/nexinvo/gstledger/internal/ledger"
)

// Filter narrows voucher listings.
type Filter struct {
	Type *ledger.VoucherType
	From *time.Time
	To   *time.Time
}

// Repo defines read operations needed by the service.
type Repo interface {
	AccountsByIDs(ctx context.Context, ids []int64) (map[int64]ledger.LedgerAccount, error)
	ListVouchers(ctx context.Context, f Filter) ([]ledger.Voucher, error)
	GetVoucher(ctx context.Context, id uuid.UUID) (ledger.Voucher, error)
}

// Writer defines write operations needed by the service.
type Writer interface {
	CreateVoucher(ctx context.Context, v ledger.Voucher) (ledger.Voucher, error)
	UpdateVoucher(ctx context.Context, v ledger.Voucher) (ledger.Voucher, error)
	DeleteVoucher(ctx context.Context, id uuid.UUID) error
}

// Service exposes validation and persistence of vouchers.
type Service interface {
	Validate(ctx context.Context, v ledger.Voucher) error
	Create(ctx context.Context, v ledger.Voucher) (ledger.Voucher, error)
	Get(ctx context.Context, id uuid.UUID) (ledger.Voucher, error)
	List(ctx context.Context, f Filter) ([]ledger.Voucher, error)
	Update(ctx context.Context, v ledger.Voucher) (ledger.Voucher, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Post(ctx context.Context, id uuid.UUID) (ledger.Voucher, error)
}

type service struct {
	repo   Repo
	writer Writer
}

func New(repo Repo, writer Writer) Service { return &service{repo: repo, writer: writer} }

// Validate enforces the double-entry invariants on a candidate voucher
// before it is persisted. Failures are ValidationErrors and never reach
// storage.
func (s *service) Validate(ctx context.Context, v ledger.Voucher) error {
	if !ledger.ValidVoucherType(v.Type) {
		return invalid("voucher_type", "unknown voucher type")
	}
	if v.Date.IsZero() {
		return invalid("voucher_date", "date is required")
	}
	if len(v.Entries) < 2 {
		return errs.ErrTooFewEntries
	}
	ids := make([]int64, 0, len(v.Entries))
	for i, e := range v.Entries {
		if e.LedgerID == 0 {
			return invalid(entryField(i, "ledger"), "ledger is required")
		}
		hasDebit := !e.Debit.IsZero()
		hasCredit := !e.Credit.IsZero()
		if hasDebit && hasCredit {
			return invalid(entryField(i, ""), "cannot have both debit and credit")
		}
		if !hasDebit && !hasCredit {
			return invalid(entryField(i, ""), "either debit or credit must be set")
		}
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return invalid(entryField(i, ""), "amount must not be negative")
		}
		ids = append(ids, e.LedgerID)
	}
	res := CheckBalance(v.Entries)
	if res.TotalDebit.IsZero() {
		return invalid("entries", "total debit must be greater than zero")
	}
	if !res.Balanced {
		return &ValidationError{Field: "entries", Message: res.MismatchMessage()}
	}
	accounts, err := s.repo.AccountsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i, e := range v.Entries {
		acc, ok := accounts[e.LedgerID]
		if !ok {
			return invalid(entryField(i, "ledger"), "ledger not found")
		}
		if !acc.Active {
			return invalid(entryField(i, "ledger"), "ledger is inactive")
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, v ledger.Voucher) (ledger.Voucher, error) {
	if err := s.Validate(ctx, v); err != nil {
		return ledger.Voucher{}, err
	}
	v.ID = uuid.New()
	// A voucher reaching the service was submitted by the client; posting
	// is a separate transition.
	if v.Status == "" || v.Status == ledger.StatusDraft {
		v.Status = ledger.StatusSubmitted
	}
	return s.writer.CreateVoucher(ctx, v)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (ledger.Voucher, error) {
	if id == uuid.Nil {
		return ledger.Voucher{}, errs.ErrInvalid
	}
	return s.repo.GetVoucher(ctx, id)
}

func (s *service) List(ctx context.Context, f Filter) ([]ledger.Voucher, error) {
	if f.Type != nil && !ledger.ValidVoucherType(*f.Type) {
		return nil, errs.ErrInvalid
	}
	return s.repo.ListVouchers(ctx, f)
}

// Update replaces a voucher that has not been posted yet.
func (s *service) Update(ctx context.Context, v ledger.Voucher) (ledger.Voucher, error) {
	if v.ID == uuid.Nil {
		return ledger.Voucher{}, errs.ErrInvalid
	}
	current, err := s.repo.GetVoucher(ctx, v.ID)
	if err != nil {
		return ledger.Voucher{}, err
	}
	if !current.Editable() {
		return ledger.Voucher{}, errs.ErrPosted
	}
	if err := s.Validate(ctx, v); err != nil {
		return ledger.Voucher{}, err
	}
	v.Status = current.Status
	return s.writer.UpdateVoucher(ctx, v)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.ErrInvalid
	}
	current, err := s.repo.GetVoucher(ctx, id)
	if err != nil {
		return err
	}
	if !current.Editable() {
		return errs.ErrPosted
	}
	return s.writer.DeleteVoucher(ctx, id)
}

// Post marks a voucher as posted. Posted is terminal: further edits and
// deletes are refused.
func (s *service) Post(ctx context.Context, id uuid.UUID) (ledger.Voucher, error) {
	if id == uuid.Nil {
		return ledger.Voucher{}, errs.ErrInvalid
	}
	current, err := s.repo.GetVoucher(ctx, id)
	if err != nil {
		return ledger.Voucher{}, err
	}
	if current.Status == ledger.StatusPosted {
		return ledger.Voucher{}, errs.ErrPosted
	}
	current.Status = ledger.StatusPosted
	return s.writer.UpdateVoucher(ctx, current)
}

func entryField(i int, sub string) string {
	f := "entries[" + itoa(i) + "]"
	if sub != "" {
		f += "." + sub
	}
	return f
}

// small, allocation-free int to string for errors
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := false
	if n < 0 {
		neg = true
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
