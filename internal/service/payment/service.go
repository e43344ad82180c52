// Package payment implements receipts and expense payments, with optional
// voucher posting gated on the accounting capability of the ledger.
package payment

import (
	"context"
	"fmt"

	"github.com/nexinvo/gstledger/internal/errs"
	"github.com/nexinvo/gstledger/internal/ledger"
	"github.com/nexinvo/gstledger/internal/service/voucher"
)

type Repo interface {
	ListPayments(ctx context.Context, kind ledger.PaymentKind) ([]ledger.Payment, error)
	GetPayment(ctx context.Context, id int64) (ledger.Payment, error)
}

type Writer interface {
	CreatePayment(ctx context.Context, p ledger.Payment) (ledger.Payment, error)
	UpdatePayment(ctx context.Context, p ledger.Payment) (ledger.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
}

// Capability answers whether voucher posting is possible at all.
type Capability interface {
	CanPostToLedger(ctx context.Context) (bool, error)
}

// VoucherCreator is the slice of the voucher service this package needs.
type VoucherCreator interface {
	Create(ctx context.Context, v ledger.Voucher) (ledger.Voucher, error)
}

type Service interface {
	Create(ctx context.Context, p ledger.Payment) (ledger.Payment, error)
	List(ctx context.Context, kind ledger.PaymentKind) ([]ledger.Payment, error)
	Get(ctx context.Context, id int64) (ledger.Payment, error)
	Update(ctx context.Context, p ledger.Payment) (ledger.Payment, error)
	Delete(ctx context.Context, id int64) error
	BulkDelete(ctx context.Context, ids []int64) BulkResult
}

type service struct {
	repo     Repo
	writer   Writer
	cap      Capability
	vouchers VoucherCreator
}

func New(repo Repo, writer Writer, cap Capability, vouchers VoucherCreator) Service {
	return &service{repo: repo, writer: writer, cap: cap, vouchers: vouchers}
}

func (s *service) validate(p ledger.Payment) error {
	if p.Kind != ledger.KindReceipt && p.Kind != ledger.KindPayment {
		return fmt.Errorf("%w: kind must be receipt or payment", errs.ErrInvalid)
	}
	if p.Date.IsZero() {
		return fmt.Errorf("%w: date is required", errs.ErrInvalid)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalid)
	}
	if p.TDSAmount.IsNegative() || p.GSTTDSAmount.IsNegative() {
		return fmt.Errorf("%w: tds amounts must not be negative", errs.ErrInvalid)
	}
	return nil
}

// Create saves the record, posting a voucher only when accounting is
// configured and the caller asked for it. When no cash/bank ledger exists
// the post flag is forced off and the record is saved as a plain
// transaction; the voucher step is skipped entirely.
func (s *service) Create(ctx context.Context, p ledger.Payment) (ledger.Payment, error) {
	if err := s.validate(p); err != nil {
		return ledger.Payment{}, err
	}
	p.RecalculateAmountReceived()

	can, err := s.cap.CanPostToLedger(ctx)
	if err != nil {
		return ledger.Payment{}, err
	}
	if !can {
		p.PostToLedger = false
	}
	if p.PostToLedger {
		v, err := s.buildVoucher(p)
		if err != nil {
			return ledger.Payment{}, err
		}
		created, err := s.vouchers.Create(ctx, v)
		if err != nil {
			return ledger.Payment{}, err
		}
		p.VoucherID = &created.ID
	}
	return s.writer.CreatePayment(ctx, p)
}

func (s *service) buildVoucher(p ledger.Payment) (ledger.Voucher, error) {
	in := voucher.MoneyInput{
		CashBankLedger: p.CashBankLedgerID,
		CounterLedger:  p.CounterLedgerID,
		Amount:         p.Amount,
		Date:           p.Date,
		Narration:      p.Narration,
		Reference:      p.ReferenceNumber,
	}
	if p.Kind == ledger.KindPayment {
		return voucher.BuildPayment(in)
	}
	return voucher.BuildReceipt(in)
}

func (s *service) List(ctx context.Context, kind ledger.PaymentKind) ([]ledger.Payment, error) {
	return s.repo.ListPayments(ctx, kind)
}

func (s *service) Get(ctx context.Context, id int64) (ledger.Payment, error) {
	if id == 0 {
		return ledger.Payment{}, errs.ErrInvalid
	}
	return s.repo.GetPayment(ctx, id)
}

func (s *service) Update(ctx context.Context, p ledger.Payment) (ledger.Payment, error) {
	if p.ID == 0 {
		return ledger.Payment{}, errs.ErrInvalid
	}
	if err := s.validate(p); err != nil {
		return ledger.Payment{}, err
	}
	current, err := s.repo.GetPayment(ctx, p.ID)
	if err != nil {
		return ledger.Payment{}, err
	}
	p.RecalculateAmountReceived()
	p.VoucherID = current.VoucherID
	return s.writer.UpdatePayment(ctx, p)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return errs.ErrInvalid
	}
	return s.writer.DeletePayment(ctx, id)
}

// BulkResult is the aggregate outcome of a bulk action.
type BulkResult struct {
	Succeeded int
	Failed    int
}

// BulkDelete runs as a sequential loop of independent deletes. No batching,
// no rollback, no cancellation once started; the caller gets counts only.
func (s *service) BulkDelete(ctx context.Context, ids []int64) BulkResult {
	var res BulkResult
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			res.Failed++
			continue
		}
		res.Succeeded++
	}
	return res
}
