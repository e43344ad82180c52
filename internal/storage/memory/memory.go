// Package memory provides a simple in-memory implementation used for
// development and tests. It keeps code paths easy to follow while allowing
// us to plug in a real DB later.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/nexinvo/gstledger/internal/errs"
	"github.com/nexinvo/gstledger/internal/ledger"
	"github.com/nexinvo/gstledger/internal/service/voucher"
)

// Store is an in-memory implementation of the repository+writer interfaces
// used by the API. It is guarded by an RWMutex for concurrent reads/writes.
type Store struct {
	mu        sync.RWMutex
	accounts  map[int64]ledger.LedgerAccount
	vouchers  map[uuid.UUID]ledger.Voucher
	clients   map[int64]ledger.Client
	payments  map[int64]ledger.Payment
	reminders map[int64]ledger.Reminder
	settings  ledger.ReminderSettings

	accountSeq  int64
	clientSeq   int64
	paymentSeq  int64
	reminderSeq int64
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		accounts:  make(map[int64]ledger.LedgerAccount),
		vouchers:  make(map[uuid.UUID]ledger.Voucher),
		clients:   make(map[int64]ledger.Client),
		payments:  make(map[int64]ledger.Payment),
		reminders: make(map[int64]ledger.Reminder),
	}
}

// Seed helpers for local dev/tests.
func (s *Store) SeedAccount(a ledger.LedgerAccount) {
	s.mu.Lock()
	if a.ID == 0 {
		s.accountSeq++
		a.ID = s.accountSeq
	} else if a.ID > s.accountSeq {
		s.accountSeq = a.ID
	}
	s.accounts[a.ID] = a
	s.mu.Unlock()
}

func (s *Store) SeedClient(c ledger.Client) {
	s.mu.Lock()
	if c.ID == 0 {
		s.clientSeq++
		c.ID = s.clientSeq
	} else if c.ID > s.clientSeq {
		s.clientSeq = c.ID
	}
	s.clients[c.ID] = c
	s.mu.Unlock()
}

func (s *Store) Reset() {
	s.mu.Lock()
	s.accounts = map[int64]ledger.LedgerAccount{}
	s.vouchers = map[uuid.UUID]ledger.Voucher{}
	s.clients = map[int64]ledger.Client{}
	s.payments = map[int64]ledger.Payment{}
	s.reminders = map[int64]ledger.Reminder{}
	s.settings = ledger.ReminderSettings{}
	s.accountSeq, s.clientSeq, s.paymentSeq, s.reminderSeq = 0, 0, 0, 0
	s.mu.Unlock()
}

// --- accounts ---

func (s *Store) ListAccounts(_ context.Context) ([]ledger.LedgerAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.LedgerAccount, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetAccount(_ context.Context, id int64) (ledger.LedgerAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return ledger.LedgerAccount{}, errs.ErrNotFound
	}
	return a, nil
}

func (s *Store) AccountsByIDs(_ context.Context, ids []int64) (map[int64]ledger.LedgerAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int64]ledger.LedgerAccount, len(ids))
	for _, id := range ids {
		if a, ok := s.accounts[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (s *Store) CreateAccount(_ context.Context, a ledger.LedgerAccount) (ledger.LedgerAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accountSeq++
	a.ID = s.accountSeq
	s.accounts[a.ID] = a
	return a, nil
}

func (s *Store) UpdateAccount(_ context.Context, a ledger.LedgerAccount) (ledger.LedgerAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[a.ID]; !ok {
		return ledger.LedgerAccount{}, errs.ErrNotFound
	}
	s.accounts[a.ID] = a
	return a, nil
}

// --- vouchers ---

func (s *Store) ListVouchers(_ context.Context, f voucher.Filter) ([]ledger.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Voucher, 0, len(s.vouchers))
	for _, v := range s.vouchers {
		if f.Type != nil && v.Type != *f.Type {
			continue
		}
		if f.From != nil && v.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && v.Date.After(*f.To) {
			continue
		}
		out = append(out, v)
	}
	// sorted asc by (Date, ID) for a stable listing
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *Store) GetVoucher(_ context.Context, id uuid.UUID) (ledger.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vouchers[id]
	if !ok {
		return ledger.Voucher{}, errs.ErrNotFound
	}
	return v, nil
}

func (s *Store) CreateVoucher(_ context.Context, v ledger.Voucher) (ledger.Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vouchers[v.ID] = v
	return v, nil
}

func (s *Store) UpdateVoucher(_ context.Context, v ledger.Voucher) (ledger.Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vouchers[v.ID]; !ok {
		return ledger.Voucher{}, errs.ErrNotFound
	}
	s.vouchers[v.ID] = v
	return v, nil
}

func (s *Store) DeleteVoucher(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vouchers[id]; !ok {
		return errs.ErrNotFound
	}
	delete(s.vouchers, id)
	return nil
}

// --- clients ---

func (s *Store) ListClients(_ context.Context) ([]ledger.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetClient(_ context.Context, id int64) (ledger.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[id]
	if !ok {
		return ledger.Client{}, errs.ErrNotFound
	}
	return c, nil
}

func (s *Store) CreateClient(_ context.Context, c ledger.Client) (ledger.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientSeq++
	c.ID = s.clientSeq
	s.clients[c.ID] = c
	return c, nil
}

func (s *Store) UpdateClient(_ context.Context, c ledger.Client) (ledger.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c.ID]; !ok {
		return ledger.Client{}, errs.ErrNotFound
	}
	s.clients[c.ID] = c
	return c, nil
}

func (s *Store) DeleteClient(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[id]; !ok {
		return errs.ErrNotFound
	}
	delete(s.clients, id)
	return nil
}

// --- payments ---

func (s *Store) ListPayments(_ context.Context, kind ledger.PaymentKind) ([]ledger.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Payment, 0)
	for _, p := range s.payments {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetPayment(_ context.Context, id int64) (ledger.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[id]
	if !ok {
		return ledger.Payment{}, errs.ErrNotFound
	}
	return p, nil
}

func (s *Store) CreatePayment(_ context.Context, p ledger.Payment) (ledger.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentSeq++
	p.ID = s.paymentSeq
	s.payments[p.ID] = p
	return p, nil
}

func (s *Store) UpdatePayment(_ context.Context, p ledger.Payment) (ledger.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[p.ID]; !ok {
		return ledger.Payment{}, errs.ErrNotFound
	}
	s.payments[p.ID] = p
	return p, nil
}

func (s *Store) DeletePayment(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[id]; !ok {
		return errs.ErrNotFound
	}
	delete(s.payments, id)
	return nil
}

// --- reminders ---

func (s *Store) ListReminders(_ context.Context, status ledger.ReminderStatus) ([]ledger.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Reminder, 0)
	for _, r := range s.reminders {
		if r.Status == status {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetReminder(_ context.Context, id int64) (ledger.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reminders[id]
	if !ok {
		return ledger.Reminder{}, errs.ErrNotFound
	}
	return r, nil
}

// PendingInvoices derives outstanding receivables from receipts that have
// not been fully settled. In-memory this is approximated from reminder rows
// still scheduled; the SQL store computes it from receivable ledgers.
func (s *Store) PendingInvoices(_ context.Context) ([]ledger.PendingInvoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.PendingInvoice, 0)
	for _, r := range s.reminders {
		if r.Status != ledger.ReminderScheduled {
			continue
		}
		inv := ledger.PendingInvoice{
			ClientID:    r.ClientID,
			InvoiceRef:  r.InvoiceRef,
			DueDate:     r.DueDate,
			Outstanding: r.Amount,
		}
		if c, ok := s.clients[r.ClientID]; ok {
			inv.ClientName = c.Name
		}
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (s *Store) ReminderSettings(_ context.Context) (ledger.ReminderSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

func (s *Store) CreateReminder(_ context.Context, r ledger.Reminder) (ledger.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminderSeq++
	r.ID = s.reminderSeq
	s.reminders[r.ID] = r
	return r, nil
}

func (s *Store) UpdateReminder(_ context.Context, r ledger.Reminder) (ledger.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reminders[r.ID]; !ok {
		return ledger.Reminder{}, errs.ErrNotFound
	}
	s.reminders[r.ID] = r
	return r, nil
}

func (s *Store) SaveReminderSettings(_ context.Context, set ledger.ReminderSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = set
	return nil
}
