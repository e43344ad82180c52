// Package account implements the ledger-account registry rules: group slugs,
// system-account guards, opening-balance patches, and the cash/bank
// capability check used to gate voucher posting.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nexinvo/gstledger/internal/dictionary"
	"github.com/nexinvo/gstledger/internal/errs"
	"github.com/nexinvo/gstledger/internal/ledger"
	"github.com/nexinvo/gstledger/internal/slug"
)

// ListFilter narrows account listings. CashBank and Parties mirror the
// filters the voucher screens need.
type ListFilter struct {
	CashBank bool
	Parties  bool
	Type     *ledger.AccountType
}

type Repo interface {
	ListAccounts(ctx context.Context) ([]ledger.LedgerAccount, error)
	GetAccount(ctx context.Context, id int64) (ledger.LedgerAccount, error)
}

type Writer interface {
	CreateAccount(ctx context.Context, a ledger.LedgerAccount) (ledger.LedgerAccount, error)
	UpdateAccount(ctx context.Context, a ledger.LedgerAccount) (ledger.LedgerAccount, error)
}

type Service interface {
	ValidateCreate(a ledger.LedgerAccount) error
	Create(ctx context.Context, a ledger.LedgerAccount) (ledger.LedgerAccount, error)
	List(ctx context.Context, f ListFilter) ([]ledger.LedgerAccount, error)
	Get(ctx context.Context, id int64) (ledger.LedgerAccount, error)
	Update(ctx context.Context, a ledger.LedgerAccount) (ledger.LedgerAccount, error)
	Deactivate(ctx context.Context, id int64) error
	UpdateOpeningBalance(ctx context.Context, id int64, amount decimal.Decimal, balType ledger.BalanceType) (ledger.LedgerAccount, error)
	ClearOpeningBalance(ctx context.Context, id int64) (ledger.LedgerAccount, error)
	CanPostToLedger(ctx context.Context) (bool, error)
}

type service struct {
	repo   Repo
	writer Writer
}

func New(repo Repo, writer Writer) Service { return &service{repo: repo, writer: writer} }

// ErrNameExists indicates an account with the same name already exists.
var ErrNameExists = errors.New("ledger account name already exists")

func (s *service) ValidateCreate(a ledger.LedgerAccount) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name is required", errs.ErrInvalid)
	}
	if !ledger.ValidAccountType(a.Type) {
		return fmt.Errorf("%w: invalid account type", errs.ErrInvalid)
	}
	if a.Group == "" {
		return fmt.Errorf("%w: group is required", errs.ErrInvalid)
	}
	if !slug.IsSlug(strings.ToLower(a.Group)) {
		return fmt.Errorf("%w: invalid group slug", errs.ErrInvalid)
	}
	switch a.OpeningBalanceType {
	case ledger.BalanceDr, ledger.BalanceCr, "":
	default:
		return fmt.Errorf("%w: opening balance type must be Dr or Cr", errs.ErrInvalid)
	}
	if a.OpeningBalance.IsNegative() {
		return fmt.Errorf("%w: opening balance must not be negative", errs.ErrInvalid)
	}
	return nil
}

func (s *service) Create(ctx context.Context, a ledger.LedgerAccount) (ledger.LedgerAccount, error) {
	a.Group = slug.Slugify(a.Group)
	if err := s.ValidateCreate(a); err != nil {
		return ledger.LedgerAccount{}, err
	}
	existing, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return ledger.LedgerAccount{}, err
	}
	for _, other := range existing {
		if strings.EqualFold(other.Name, a.Name) {
			return ledger.LedgerAccount{}, ErrNameExists
		}
	}
	if a.OpeningBalanceType == "" {
		a.OpeningBalanceType = ledger.BalanceDr
	}
	a.IsBankAccount = a.Type == ledger.AccountTypeBank
	// Reserved groups back the built-in system accounts.
	if dictionary.IsReserved(a.Type, a.Group) {
		a.IsSystemAccount = true
	}
	a.CurrentBalance = a.OpeningBalance
	a.CurrentBalanceType = a.OpeningBalanceType
	a.Active = true
	return s.writer.CreateAccount(ctx, a)
}

func (s *service) List(ctx context.Context, f ListFilter) ([]ledger.LedgerAccount, error) {
	all, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ledger.LedgerAccount, 0, len(all))
	for _, a := range all {
		if !a.Active {
			continue
		}
		if f.CashBank && !a.Type.IsCashOrBank() {
			continue
		}
		if f.Parties && !a.Type.IsParty() {
			continue
		}
		if f.Type != nil && a.Type != *f.Type {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (ledger.LedgerAccount, error) {
	if id == 0 {
		return ledger.LedgerAccount{}, errs.ErrInvalid
	}
	return s.repo.GetAccount(ctx, id)
}

// Update applies changes to name/group/bank details. Type changes on system
// accounts are refused; type changes otherwise reset the bank flag.
func (s *service) Update(ctx context.Context, a ledger.LedgerAccount) (ledger.LedgerAccount, error) {
	if a.ID == 0 {
		return ledger.LedgerAccount{}, errs.ErrInvalid
	}
	current, err := s.repo.GetAccount(ctx, a.ID)
	if err != nil {
		return ledger.LedgerAccount{}, err
	}
	if current.IsSystemAccount && current.Type != a.Type {
		return ledger.LedgerAccount{}, errs.ErrSystemAccount
	}
	a.Group = slug.Slugify(a.Group)
	if err := s.ValidateCreate(a); err != nil {
		return ledger.LedgerAccount{}, err
	}
	a.IsBankAccount = a.Type == ledger.AccountTypeBank
	a.IsSystemAccount = current.IsSystemAccount
	a.Active = current.Active
	return s.writer.UpdateAccount(ctx, a)
}

// Deactivate soft-deletes the account. System accounts cannot be removed.
func (s *service) Deactivate(ctx context.Context, id int64) error {
	if id == 0 {
		return errs.ErrInvalid
	}
	acc, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return err
	}
	if acc.IsSystemAccount {
		return errs.ErrSystemAccount
	}
	acc.Active = false
	_, err = s.writer.UpdateAccount(ctx, acc)
	return err
}

// UpdateOpeningBalance is the PATCH semantics of the trial-balance screen:
// only the opening balance pair changes, everything else stays.
func (s *service) UpdateOpeningBalance(ctx context.Context, id int64, amount decimal.Decimal, balType ledger.BalanceType) (ledger.LedgerAccount, error) {
	if id == 0 {
		return ledger.LedgerAccount{}, errs.ErrInvalid
	}
	if amount.IsNegative() {
		return ledger.LedgerAccount{}, fmt.Errorf("%w: opening balance must not be negative", errs.ErrInvalid)
	}
	if balType != ledger.BalanceDr && balType != ledger.BalanceCr {
		return ledger.LedgerAccount{}, fmt.Errorf("%w: opening balance type must be Dr or Cr", errs.ErrInvalid)
	}
	acc, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return ledger.LedgerAccount{}, err
	}
	acc.OpeningBalance = amount
	acc.OpeningBalanceType = balType
	return s.writer.UpdateAccount(ctx, acc)
}

// ClearOpeningBalance resets the opening balance to (0, Dr). Destructive and
// non-reversible; callers confirm before invoking.
func (s *service) ClearOpeningBalance(ctx context.Context, id int64) (ledger.LedgerAccount, error) {
	return s.UpdateOpeningBalance(ctx, id, decimal.Zero, ledger.BalanceDr)
}

// CanPostToLedger reports whether accounting is configured: at least one
// active cash or bank ledger exists. Payment/receipt flows force their
// post-to-ledger flag off when this is false.
func (s *service) CanPostToLedger(ctx context.Context) (bool, error) {
	all, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range all {
		if a.Active && a.Type.IsCashOrBank() {
			return true, nil
		}
	}
	return false, nil
}
