// Package postgres provides a pgx-backed storage implementation that
// satisfies the repository and writer interfaces used by the HTTP/API and
// services.
//
// It is intentionally small and explicit. Migrations that create the expected
// schema live under db/migrations. This package focuses on mapping between
// the domain entities and SQL rows and running the necessary statements.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nexinvo/gstledger/internal/errs"
	"github.com/nexinvo/gstledger/internal/ledger"
	"github.com/nexinvo/gstledger/internal/meta"
	"github.com/nexinvo/gstledger/internal/service/voucher"
)

// Store holds a pgx connection pool and implements the read/write interfaces
// used across the service layer. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// Amounts travel as numeric columns. pgx maps them through text on both
// sides so no float rounding ever touches a balance.
func scanDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

const accountCols = `id, name, "group", type, opening_balance::text, opening_balance_type,
		current_balance::text, current_balance_type, is_bank_account, is_system_account,
		bank_name, bank_account_number, bank_ifsc, bank_branch, metadata, active`

func scanAccount(row pgx.Row) (ledger.LedgerAccount, error) {
	var a ledger.LedgerAccount
	var opening, current string
	var mdBytes []byte
	err := row.Scan(&a.ID, &a.Name, &a.Group, &a.Type, &opening, &a.OpeningBalanceType,
		&current, &a.CurrentBalanceType, &a.IsBankAccount, &a.IsSystemAccount,
		&a.Bank.BankName, &a.Bank.AccountNumber, &a.Bank.IFSCCode, &a.Bank.Branch,
		&mdBytes, &a.Active)
	if err != nil {
		return ledger.LedgerAccount{}, err
	}
	a.OpeningBalance = scanDecimal(opening)
	a.CurrentBalance = scanDecimal(current)
	if len(mdBytes) > 0 {
		var m meta.Metadata
		if err := m.UnmarshalJSON(mdBytes); err == nil {
			a.Metadata = m
		}
	}
	return a, nil
}

// --- Account reads ---

// ListAccounts returns every ledger account, active or not.
func (s *Store) ListAccounts(ctx context.Context) ([]ledger.LedgerAccount, error) {
	rows, err := s.pool.Query(ctx, `
		select `+accountCols+`
		from ledger_accounts
		order by type, "group", name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.LedgerAccount, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetAccount fetches a single account by id.
func (s *Store) GetAccount(ctx context.Context, id int64) (ledger.LedgerAccount, error) {
	a, err := scanAccount(s.pool.QueryRow(ctx, `
		select `+accountCols+`
		from ledger_accounts
		where id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.LedgerAccount{}, errs.ErrNotFound
	}
	return a, err
}

// AccountsByIDs returns accounts filtered by IDs, keyed by id.
func (s *Store) AccountsByIDs(ctx context.Context, ids []int64) (map[int64]ledger.LedgerAccount, error) {
	if len(ids) == 0 {
		return map[int64]ledger.LedgerAccount{}, nil
	}
	rows, err := s.pool.Query(ctx, `
		select `+accountCols+`
		from ledger_accounts
		where id = any($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[int64]ledger.LedgerAccount, len(ids))
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out[a.ID] = a
	}
	return out, rows.Err()
}

// --- Account writes ---

// CreateAccount inserts an account row and returns it with the generated id.
func (s *Store) CreateAccount(ctx context.Context, a ledger.LedgerAccount) (ledger.LedgerAccount, error) {
	if err := a.Metadata.Validate(); err != nil {
		return ledger.LedgerAccount{}, err
	}
	md, _ := a.Metadata.MarshalStableJSON()
	err := s.pool.QueryRow(ctx, `
		insert into ledger_accounts
			(name, "group", type, opening_balance, opening_balance_type,
			 current_balance, current_balance_type, is_bank_account, is_system_account,
			 bank_name, bank_account_number, bank_ifsc, bank_branch, metadata, active)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		returning id
	`, a.Name, a.Group, a.Type, a.OpeningBalance.String(), a.OpeningBalanceType,
		a.CurrentBalance.String(), a.CurrentBalanceType, a.IsBankAccount, a.IsSystemAccount,
		a.Bank.BankName, a.Bank.AccountNumber, a.Bank.IFSCCode, a.Bank.Branch, md, a.Active).Scan(&a.ID)
	if err != nil {
		return ledger.LedgerAccount{}, err
	}
	return a, nil
}

// UpdateAccount updates mutable fields of an account.
func (s *Store) UpdateAccount(ctx context.Context, a ledger.LedgerAccount) (ledger.LedgerAccount, error) {
	if err := a.Metadata.Validate(); err != nil {
		return ledger.LedgerAccount{}, err
	}
	md, _ := a.Metadata.MarshalStableJSON()
	ct, err := s.pool.Exec(ctx, `
		update ledger_accounts
		set name=$1, "group"=$2, type=$3, opening_balance=$4, opening_balance_type=$5,
			current_balance=$6, current_balance_type=$7, is_bank_account=$8,
			bank_name=$9, bank_account_number=$10, bank_ifsc=$11, bank_branch=$12,
			metadata=$13, active=$14
		where id=$15
	`, a.Name, a.Group, a.Type, a.OpeningBalance.String(), a.OpeningBalanceType,
		a.CurrentBalance.String(), a.CurrentBalanceType, a.IsBankAccount,
		a.Bank.BankName, a.Bank.AccountNumber, a.Bank.IFSCCode, a.Bank.Branch, md, a.Active, a.ID)
	if err != nil {
		return ledger.LedgerAccount{}, err
	}
	if ct.RowsAffected() == 0 {
		return ledger.LedgerAccount{}, errs.ErrNotFound
	}
	return a, nil
}

// --- Voucher reads ---

// ListVouchers returns vouchers matching the filter, entries populated,
// sorted asc by (date, id).
func (s *Store) ListVouchers(ctx context.Context, f voucher.Filter) ([]ledger.Voucher, error) {
	q := `
		select id, type, date, narration, reference_number, status, metadata
		from vouchers
		where ($1::text is null or type = $1)
		  and ($2::date is null or date >= $2)
		  and ($3::date is null or date <= $3)
		order by date asc, id asc
	`
	rows, err := s.pool.Query(ctx, q, f.Type, f.From, f.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	vouchers := make([]ledger.Voucher, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var v ledger.Voucher
		var mdBytes []byte
		if err := rows.Scan(&v.ID, &v.Type, &v.Date, &v.Narration, &v.ReferenceNumber, &v.Status, &mdBytes); err != nil {
			return nil, err
		}
		if len(mdBytes) > 0 {
			var m meta.Metadata
			if err := m.UnmarshalJSON(mdBytes); err == nil {
				v.Metadata = m
			}
		}
		vouchers = append(vouchers, v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(vouchers) == 0 {
		return vouchers, nil
	}
	entryRows, err := s.pool.Query(ctx, `
		select voucher_id, ledger_id, debit::text, credit::text, narration
		from voucher_entries
		where voucher_id = any($1)
		order by voucher_id, ordinal asc
	`, ids)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()
	idx := make(map[uuid.UUID]*ledger.Voucher, len(vouchers))
	for i := range vouchers {
		idx[vouchers[i].ID] = &vouchers[i]
	}
	for entryRows.Next() {
		var vid uuid.UUID
		var e ledger.VoucherEntry
		var debit, credit string
		if err := entryRows.Scan(&vid, &e.LedgerID, &debit, &credit, &e.Narration); err != nil {
			return nil, err
		}
		e.Debit = scanDecimal(debit)
		e.Credit = scanDecimal(credit)
		if v := idx[vid]; v != nil {
			v.Entries = append(v.Entries, e)
		}
	}
	return vouchers, entryRows.Err()
}

// GetVoucher returns a voucher by id with entries populated.
func (s *Store) GetVoucher(ctx context.Context, id uuid.UUID) (ledger.Voucher, error) {
	var v ledger.Voucher
	var mdBytes []byte
	err := s.pool.QueryRow(ctx, `
		select id, type, date, narration, reference_number, status, metadata
		from vouchers
		where id = $1
	`, id).Scan(&v.ID, &v.Type, &v.Date, &v.Narration, &v.ReferenceNumber, &v.Status, &mdBytes)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Voucher{}, errs.ErrNotFound
	}
	if err != nil {
		return ledger.Voucher{}, err
	}
	if len(mdBytes) > 0 {
		var m meta.Metadata
		if err := m.UnmarshalJSON(mdBytes); err == nil {
			v.Metadata = m
		}
	}
	rows, err := s.pool.Query(ctx, `
		select ledger_id, debit::text, credit::text, narration
		from voucher_entries
		where voucher_id = $1
		order by ordinal asc
	`, id)
	if err != nil {
		return ledger.Voucher{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var e ledger.VoucherEntry
		var debit, credit string
		if err := rows.Scan(&e.LedgerID, &debit, &credit, &e.Narration); err != nil {
			return ledger.Voucher{}, err
		}
		e.Debit = scanDecimal(debit)
		e.Credit = scanDecimal(credit)
		v.Entries = append(v.Entries, e)
	}
	return v, rows.Err()
}

// --- Voucher writes ---

// CreateVoucher inserts a voucher + its entries in a transaction.
func (s *Store) CreateVoucher(ctx context.Context, v ledger.Voucher) (ledger.Voucher, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return ledger.Voucher{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	if err := insertVoucher(ctx, tx, v); err != nil {
		return ledger.Voucher{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return ledger.Voucher{}, err
	}
	return v, nil
}

// UpdateVoucher replaces the voucher header and all entries.
func (s *Store) UpdateVoucher(ctx context.Context, v ledger.Voucher) (ledger.Voucher, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return ledger.Voucher{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	md, _ := v.Metadata.MarshalStableJSON()
	ct, err := tx.Exec(ctx, `
		update vouchers
		set type=$1, date=$2, narration=$3, reference_number=$4, status=$5, metadata=$6
		where id=$7
	`, v.Type, v.Date, v.Narration, v.ReferenceNumber, v.Status, md, v.ID)
	if err != nil {
		return ledger.Voucher{}, err
	}
	if ct.RowsAffected() == 0 {
		return ledger.Voucher{}, errs.ErrNotFound
	}
	if _, err := tx.Exec(ctx, `delete from voucher_entries where voucher_id=$1`, v.ID); err != nil {
		return ledger.Voucher{}, err
	}
	if err := insertEntries(ctx, tx, v); err != nil {
		return ledger.Voucher{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return ledger.Voucher{}, err
	}
	return v, nil
}

// DeleteVoucher removes the voucher; entries go with it via cascade.
func (s *Store) DeleteVoucher(ctx context.Context, id uuid.UUID) error {
	ct, err := s.pool.Exec(ctx, `delete from vouchers where id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func insertVoucher(ctx context.Context, tx pgx.Tx, v ledger.Voucher) error {
	md, _ := v.Metadata.MarshalStableJSON()
	if _, err := tx.Exec(ctx, `
		insert into vouchers (id, type, date, narration, reference_number, status, metadata)
		values ($1,$2,$3,$4,$5,$6,$7)
	`, v.ID, v.Type, v.Date, v.Narration, v.ReferenceNumber, v.Status, md); err != nil {
		return err
	}
	return insertEntries(ctx, tx, v)
}

func insertEntries(ctx context.Context, tx pgx.Tx, v ledger.Voucher) error {
	for i, e := range v.Entries {
		if _, err := tx.Exec(ctx, `
			insert into voucher_entries (voucher_id, ordinal, ledger_id, debit, credit, narration)
			values ($1,$2,$3,$4,$5,$6)
		`, v.ID, i, e.LedgerID, e.Debit.String(), e.Credit.String(), e.Narration); err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
	}
	return nil
}

// --- Clients ---

const clientCols = `id, name, code, email, phone, mobile, address, city, state,
		pin_code, state_code, gstin, pan, date_of_birth, date_of_incorporation`

func scanClient(row pgx.Row) (ledger.Client, error) {
	var c ledger.Client
	err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Email, &c.Phone, &c.Mobile, &c.Address,
		&c.City, &c.State, &c.PINCode, &c.StateCode, &c.GSTIN, &c.PAN,
		&c.DateOfBirth, &c.DateOfIncorporation)
	return c, err
}

func (s *Store) ListClients(ctx context.Context) ([]ledger.Client, error) {
	rows, err := s.pool.Query(ctx, `select `+clientCols+` from clients order by name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) GetClient(ctx context.Context, id int64) (ledger.Client, error) {
	c, err := scanClient(s.pool.QueryRow(ctx, `select `+clientCols+` from clients where id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Client{}, errs.ErrNotFound
	}
	return c, err
}

func (s *Store) CreateClient(ctx context.Context, c ledger.Client) (ledger.Client, error) {
	err := s.pool.QueryRow(ctx, `
		insert into clients
			(name, code, email, phone, mobile, address, city, state, pin_code,
			 state_code, gstin, pan, date_of_birth, date_of_incorporation)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		returning id
	`, c.Name, c.Code, c.Email, c.Phone, c.Mobile, c.Address, c.City, c.State, c.PINCode,
		c.StateCode, c.GSTIN, c.PAN, c.DateOfBirth, c.DateOfIncorporation).Scan(&c.ID)
	if err != nil {
		return ledger.Client{}, err
	}
	return c, nil
}

func (s *Store) UpdateClient(ctx context.Context, c ledger.Client) (ledger.Client, error) {
	ct, err := s.pool.Exec(ctx, `
		update clients
		set name=$1, code=$2, email=$3, phone=$4, mobile=$5, address=$6, city=$7,
			state=$8, pin_code=$9, state_code=$10, gstin=$11, pan=$12,
			date_of_birth=$13, date_of_incorporation=$14
		where id=$15
	`, c.Name, c.Code, c.Email, c.Phone, c.Mobile, c.Address, c.City, c.State, c.PINCode,
		c.StateCode, c.GSTIN, c.PAN, c.DateOfBirth, c.DateOfIncorporation, c.ID)
	if err != nil {
		return ledger.Client{}, err
	}
	if ct.RowsAffected() == 0 {
		return ledger.Client{}, errs.ErrNotFound
	}
	return c, nil
}

func (s *Store) DeleteClient(ctx context.Context, id int64) error {
	ct, err := s.pool.Exec(ctx, `delete from clients where id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// --- Payments ---

const paymentCols = `id, kind, date, client_id, payee_name, cash_bank_ledger_id,
		counter_ledger_id, amount::text, tds_amount::text, gst_tds_amount::text,
		amount_received::text, post_to_ledger, voucher_id, narration, reference_number`

func scanPayment(row pgx.Row) (ledger.Payment, error) {
	var p ledger.Payment
	var amount, tds, gstTDS, received string
	err := row.Scan(&p.ID, &p.Kind, &p.Date, &p.ClientID, &p.PayeeName, &p.CashBankLedgerID,
		&p.CounterLedgerID, &amount, &tds, &gstTDS, &received, &p.PostToLedger,
		&p.VoucherID, &p.Narration, &p.ReferenceNumber)
	if err != nil {
		return ledger.Payment{}, err
	}
	p.Amount = scanDecimal(amount)
	p.TDSAmount = scanDecimal(tds)
	p.GSTTDSAmount = scanDecimal(gstTDS)
	p.AmountReceived = scanDecimal(received)
	return p, nil
}

func (s *Store) ListPayments(ctx context.Context, kind ledger.PaymentKind) ([]ledger.Payment, error) {
	rows, err := s.pool.Query(ctx, `
		select `+paymentCols+`
		from payments
		where kind=$1
		order by date asc, id asc
	`, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetPayment(ctx context.Context, id int64) (ledger.Payment, error) {
	p, err := scanPayment(s.pool.QueryRow(ctx, `select `+paymentCols+` from payments where id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Payment{}, errs.ErrNotFound
	}
	return p, err
}

func (s *Store) CreatePayment(ctx context.Context, p ledger.Payment) (ledger.Payment, error) {
	err := s.pool.QueryRow(ctx, `
		insert into payments
			(kind, date, client_id, payee_name, cash_bank_ledger_id, counter_ledger_id,
			 amount, tds_amount, gst_tds_amount, amount_received, post_to_ledger,
			 voucher_id, narration, reference_number)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		returning id
	`, p.Kind, p.Date, p.ClientID, p.PayeeName, p.CashBankLedgerID, p.CounterLedgerID,
		p.Amount.String(), p.TDSAmount.String(), p.GSTTDSAmount.String(),
		p.AmountReceived.String(), p.PostToLedger, p.VoucherID, p.Narration, p.ReferenceNumber).Scan(&p.ID)
	if err != nil {
		return ledger.Payment{}, err
	}
	return p, nil
}

func (s *Store) UpdatePayment(ctx context.Context, p ledger.Payment) (ledger.Payment, error) {
	ct, err := s.pool.Exec(ctx, `
		update payments
		set kind=$1, date=$2, client_id=$3, payee_name=$4, cash_bank_ledger_id=$5,
			counter_ledger_id=$6, amount=$7, tds_amount=$8, gst_tds_amount=$9,
			amount_received=$10, post_to_ledger=$11, voucher_id=$12, narration=$13,
			reference_number=$14
		where id=$15
	`, p.Kind, p.Date, p.ClientID, p.PayeeName, p.CashBankLedgerID, p.CounterLedgerID,
		p.Amount.String(), p.TDSAmount.String(), p.GSTTDSAmount.String(),
		p.AmountReceived.String(), p.PostToLedger, p.VoucherID, p.Narration, p.ReferenceNumber, p.ID)
	if err != nil {
		return ledger.Payment{}, err
	}
	if ct.RowsAffected() == 0 {
		return ledger.Payment{}, errs.ErrNotFound
	}
	return p, nil
}

func (s *Store) DeletePayment(ctx context.Context, id int64) error {
	ct, err := s.pool.Exec(ctx, `delete from payments where id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// --- Reminders ---

func (s *Store) ListReminders(ctx context.Context, status ledger.ReminderStatus) ([]ledger.Reminder, error) {
	rows, err := s.pool.Query(ctx, `
		select id, client_id, invoice_ref, due_date, amount::text, status, sent_at
		from reminders
		where status=$1
		order by due_date asc, id asc
	`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Reminder, 0)
	for rows.Next() {
		var r ledger.Reminder
		var amount string
		if err := rows.Scan(&r.ID, &r.ClientID, &r.InvoiceRef, &r.DueDate, &amount, &r.Status, &r.SentAt); err != nil {
			return nil, err
		}
		r.Amount = scanDecimal(amount)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetReminder(ctx context.Context, id int64) (ledger.Reminder, error) {
	var r ledger.Reminder
	var amount string
	err := s.pool.QueryRow(ctx, `
		select id, client_id, invoice_ref, due_date, amount::text, status, sent_at
		from reminders
		where id=$1
	`, id).Scan(&r.ID, &r.ClientID, &r.InvoiceRef, &r.DueDate, &amount, &r.Status, &r.SentAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Reminder{}, errs.ErrNotFound
	}
	if err != nil {
		return ledger.Reminder{}, err
	}
	r.Amount = scanDecimal(amount)
	return r, nil
}

// PendingInvoices lists scheduled reminders joined with client names as the
// outstanding-receivable view.
func (s *Store) PendingInvoices(ctx context.Context) ([]ledger.PendingInvoice, error) {
	rows, err := s.pool.Query(ctx, `
		select r.client_id, coalesce(c.name, ''), r.invoice_ref, r.due_date, r.amount::text
		from reminders r
		left join clients c on c.id = r.client_id
		where r.status = 'scheduled'
		order by r.due_date asc
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.PendingInvoice, 0)
	for rows.Next() {
		var inv ledger.PendingInvoice
		var amount string
		if err := rows.Scan(&inv.ClientID, &inv.ClientName, &inv.InvoiceRef, &inv.DueDate, &amount); err != nil {
			return nil, err
		}
		inv.Outstanding = scanDecimal(amount)
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (s *Store) ReminderSettings(ctx context.Context) (ledger.ReminderSettings, error) {
	var set ledger.ReminderSettings
	err := s.pool.QueryRow(ctx, `
		select enabled, days_before from reminder_settings where id = 1
	`).Scan(&set.Enabled, &set.DaysBefore)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.ReminderSettings{}, nil
	}
	return set, err
}

func (s *Store) CreateReminder(ctx context.Context, r ledger.Reminder) (ledger.Reminder, error) {
	err := s.pool.QueryRow(ctx, `
		insert into reminders (client_id, invoice_ref, due_date, amount, status, sent_at)
		values ($1,$2,$3,$4,$5,$6)
		returning id
	`, r.ClientID, r.InvoiceRef, r.DueDate, r.Amount.String(), r.Status, r.SentAt).Scan(&r.ID)
	if err != nil {
		return ledger.Reminder{}, err
	}
	return r, nil
}

func (s *Store) UpdateReminder(ctx context.Context, r ledger.Reminder) (ledger.Reminder, error) {
	ct, err := s.pool.Exec(ctx, `
		update reminders
		set client_id=$1, invoice_ref=$2, due_date=$3, amount=$4, status=$5, sent_at=$6
		where id=$7
	`, r.ClientID, r.InvoiceRef, r.DueDate, r.Amount.String(), r.Status, r.SentAt, r.ID)
	if err != nil {
		return ledger.Reminder{}, err
	}
	if ct.RowsAffected() == 0 {
		return ledger.Reminder{}, errs.ErrNotFound
	}
	return r, nil
}

func (s *Store) SaveReminderSettings(ctx context.Context, set ledger.ReminderSettings) error {
	_, err := s.pool.Exec(ctx, `
		insert into reminder_settings (id, enabled, days_before)
		values (1, $1, $2)
		on conflict (id) do update set enabled=excluded.enabled, days_before=excluded.days_before
	`, set.Enabled, set.DaysBefore)
	return err
}

// SeedDev inserts the reserved system accounts plus a cash ledger for quick
// local testing.
func (s *Store) SeedDev(ctx context.Context) ([]ledger.LedgerAccount, error) {
	accounts := []ledger.LedgerAccount{
		{Name: "Cash in Hand", Group: "cash_in_hand", Type: ledger.AccountTypeCash,
			OpeningBalanceType: ledger.BalanceDr, CurrentBalanceType: ledger.BalanceDr,
			IsSystemAccount: true, Active: true},
		{Name: "Capital Account", Group: "capital_account", Type: ledger.AccountTypeEquity,
			OpeningBalanceType: ledger.BalanceCr, CurrentBalanceType: ledger.BalanceCr,
			IsSystemAccount: true, Active: true},
		{Name: "GST Payable", Group: "duties_taxes", Type: ledger.AccountTypeTax,
			OpeningBalanceType: ledger.BalanceCr, CurrentBalanceType: ledger.BalanceCr,
			IsSystemAccount: true, Active: true},
	}
	out := make([]ledger.LedgerAccount, 0, len(accounts))
	for _, a := range accounts {
		created, err := s.CreateAccount(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, created)
	}
	return out, nil
}
