// Package reminder schedules and sends payment reminders for outstanding
// receivables.
package reminder

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nexinvo/gstledger/internal/errs"
	"github.com/nexinvo/gstledger/internal/ledger"
)

type Repo interface {
	ListReminders(ctx context.Context, status ledger.ReminderStatus) ([]ledger.Reminder, error)
	GetReminder(ctx context.Context, id int64) (ledger.Reminder, error)
	PendingInvoices(ctx context.Context) ([]ledger.PendingInvoice, error)
	ReminderSettings(ctx context.Context) (ledger.ReminderSettings, error)
}

type Writer interface {
	CreateReminder(ctx context.Context, r ledger.Reminder) (ledger.Reminder, error)
	UpdateReminder(ctx context.Context, r ledger.Reminder) (ledger.Reminder, error)
	SaveReminderSettings(ctx context.Context, s ledger.ReminderSettings) error
}

// Sender delivers one reminder to the client. Delivery transport is
// pluggable; the default logs and reports success so scheduling can be
// exercised without an outbound channel configured.
type Sender interface {
	Send(ctx context.Context, r ledger.Reminder) error
}

// LogSender is the no-op delivery used when no transport is configured.
type LogSender struct {
	Logger *slog.Logger
}

func (s LogSender) Send(_ context.Context, r ledger.Reminder) error {
	if s.Logger != nil {
		s.Logger.Info("reminder delivery skipped, no transport configured",
			slog.Int64("reminder_id", r.ID),
			slog.Int64("client_id", r.ClientID),
			slog.String("invoice", r.InvoiceRef))
	}
	return nil
}

type Service interface {
	Pending(ctx context.Context) ([]ledger.PendingInvoice, error)
	Scheduled(ctx context.Context) ([]ledger.Reminder, error)
	History(ctx context.Context) ([]ledger.Reminder, error)
	Schedule(ctx context.Context, r ledger.Reminder) (ledger.Reminder, error)
	Send(ctx context.Context, ids []int64) SendResult
	Cancel(ctx context.Context, id int64) error
	Settings(ctx context.Context) (ledger.ReminderSettings, error)
	UpdateSettings(ctx context.Context, s ledger.ReminderSettings) error
}

type service struct {
	repo   Repo
	writer Writer
	sender Sender
	now    func() time.Time
}

func New(repo Repo, writer Writer, sender Sender) Service {
	return &service{repo: repo, writer: writer, sender: sender, now: time.Now}
}

func (s *service) Pending(ctx context.Context) ([]ledger.PendingInvoice, error) {
	return s.repo.PendingInvoices(ctx)
}

func (s *service) Scheduled(ctx context.Context) ([]ledger.Reminder, error) {
	return s.repo.ListReminders(ctx, ledger.ReminderScheduled)
}

func (s *service) History(ctx context.Context) ([]ledger.Reminder, error) {
	return s.repo.ListReminders(ctx, ledger.ReminderSent)
}

func (s *service) Schedule(ctx context.Context, r ledger.Reminder) (ledger.Reminder, error) {
	if r.ClientID == 0 {
		return ledger.Reminder{}, errors.New("client is required")
	}
	if r.DueDate.IsZero() {
		return ledger.Reminder{}, errors.New("due date is required")
	}
	r.Status = ledger.ReminderScheduled
	r.SentAt = nil
	return s.writer.CreateReminder(ctx, r)
}

// SendResult is the aggregate outcome of a send batch.
type SendResult struct {
	Sent   int
	Failed int
}

// Send delivers the given reminders one at a time. A failure marks that
// reminder only; the rest of the batch still goes out.
func (s *service) Send(ctx context.Context, ids []int64) SendResult {
	var res SendResult
	for _, id := range ids {
		if err := s.sendOne(ctx, id); err != nil {
			res.Failed++
			continue
		}
		res.Sent++
	}
	return res
}

func (s *service) sendOne(ctx context.Context, id int64) error {
	r, err := s.repo.GetReminder(ctx, id)
	if err != nil {
		return err
	}
	if r.Status != ledger.ReminderScheduled {
		return errs.ErrConflict
	}
	if err := s.sender.Send(ctx, r); err != nil {
		return err
	}
	now := s.now()
	r.Status = ledger.ReminderSent
	r.SentAt = &now
	_, err = s.writer.UpdateReminder(ctx, r)
	return err
}

func (s *service) Cancel(ctx context.Context, id int64) error {
	r, err := s.repo.GetReminder(ctx, id)
	if err != nil {
		return err
	}
	if r.Status == ledger.ReminderSent {
		return errs.ErrConflict
	}
	r.Status = ledger.ReminderCancelled
	_, err = s.writer.UpdateReminder(ctx, r)
	return err
}

func (s *service) Settings(ctx context.Context) (ledger.ReminderSettings, error) {
	return s.repo.ReminderSettings(ctx)
}

func (s *service) UpdateSettings(ctx context.Context, set ledger.ReminderSettings) error {
	if set.DaysBefore < 0 {
		return errors.New("days before must not be negative")
	}
	return s.writer.SaveReminderSettings(ctx, set)
}
