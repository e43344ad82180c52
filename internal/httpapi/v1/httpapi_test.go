package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nexinvo/gstledger/internal/ledger"
	"github.com/nexinvo/gstledger/internal/service/client"
	"github.com/nexinvo/gstledger/internal/service/reminder"
	"github.com/nexinvo/gstledger/internal/storage/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// setup seeds the three built-in system accounts plus one income ledger and
// returns the wired handler.
func setup(t *testing.T) (*memory.Store, http.Handler) {
	t.Helper()
	store := memory.New()
	store.SeedAccount(ledger.LedgerAccount{
		ID: 1, Name: "Cash in Hand", Group: "cash_in_hand", Type: ledger.AccountTypeCash,
		OpeningBalance: dec("50000"), OpeningBalanceType: ledger.BalanceDr,
		CurrentBalance: dec("50000"), CurrentBalanceType: ledger.BalanceDr,
		IsSystemAccount: true, Active: true,
	})
	store.SeedAccount(ledger.LedgerAccount{
		ID: 2, Name: "Sales", Group: "sales_accounts", Type: ledger.AccountTypeIncome,
		OpeningBalanceType: ledger.BalanceCr, CurrentBalanceType: ledger.BalanceCr,
		Active: true,
	})
	store.SeedAccount(ledger.LedgerAccount{
		ID: 3, Name: "Capital Account", Group: "capital_account", Type: ledger.AccountTypeEquity,
		OpeningBalance: dec("50000"), OpeningBalanceType: ledger.BalanceCr,
		CurrentBalance: dec("50000"), CurrentBalanceType: ledger.BalanceCr,
		IsSystemAccount: true, Active: true,
	})
	h := New(store, reminder.LogSender{}, testLogger(), Options{}).Handler()
	return store, h
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v: %s", err, rec.Body.String())
	}
	return v
}

func doMultipart(t *testing.T, h http.Handler, path, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAccounts_CreateAndDuplicate(t *testing.T) {
	_, h := setup(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/ledger-accounts", map[string]any{
		"name": "HDFC Bank", "group": "bank_accounts", "account_type": "bank",
		"opening_balance": 150000, "opening_balance_type": "Dr",
		"bank_name": "HDFC", "bank_ifsc": "HDFC0001234",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[accountResponse](t, rec)
	if created.ID != 4 || !created.IsBankAccount || !created.Active {
		t.Fatalf("unexpected account: %+v", created)
	}
	if !created.CurrentBalance.Equal(dec("150000")) || created.CurrentBalanceType != "Dr" {
		t.Fatalf("current balance not derived from opening: %+v", created)
	}

	// duplicate name, case-insensitive
	rec = doJSON(t, h, http.MethodPost, "/v1/ledger-accounts", map[string]any{
		"name": "hdfc bank", "group": "bank_accounts", "account_type": "bank",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if er := decode[errorResponse](t, rec); er.Code != "name_exists" {
		t.Fatalf("expected name_exists, got %+v", er)
	}

	// bad account type is rejected before the service sees it
	rec = doJSON(t, h, http.MethodPost, "/v1/ledger-accounts", map[string]any{
		"name": "Weird", "group": "bank_accounts", "account_type": "crypto",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	// wrong content type
	req := httptest.NewRequest(http.MethodPost, "/v1/ledger-accounts", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", rr.Code)
	}
}

func TestAccounts_ListFilters(t *testing.T) {
	_, h := setup(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/ledger-accounts?cash_bank=true", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cashBank := decode[[]accountResponse](t, rec)
	if len(cashBank) != 1 || cashBank[0].Name != "Cash in Hand" {
		t.Fatalf("unexpected cash/bank list: %+v", cashBank)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/ledger-accounts?account_type=equity", nil)
	equity := decode[[]accountResponse](t, rec)
	if len(equity) != 1 || equity[0].Name != "Capital Account" {
		t.Fatalf("unexpected equity list: %+v", equity)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/ledger-accounts?parties=true", nil)
	if parties := decode[[]accountResponse](t, rec); len(parties) != 0 {
		t.Fatalf("expected no party ledgers, got %+v", parties)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/ledger-accounts?account_type=nope", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccounts_SystemGuardAndOpeningBalance(t *testing.T) {
	_, h := setup(t)

	// system accounts cannot be deactivated
	rec := doJSON(t, h, http.MethodDelete, "/v1/ledger-accounts/1", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}

	// patch only touches the opening balance pair
	rec = doJSON(t, h, http.MethodPatch, "/v1/ledger-accounts/2/opening-balance", map[string]any{
		"opening_balance": 2500, "opening_balance_type": "Cr",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	patched := decode[accountResponse](t, rec)
	if !patched.OpeningBalance.Equal(dec("2500")) || patched.OpeningBalanceType != "Cr" {
		t.Fatalf("unexpected patch result: %+v", patched)
	}
	if patched.Name != "Sales" {
		t.Fatalf("patch must not touch other fields: %+v", patched)
	}

	rec = doJSON(t, h, http.MethodPatch, "/v1/ledger-accounts/2/opening-balance", map[string]any{
		"opening_balance": -5, "opening_balance_type": "Dr",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative balance, got %d", rec.Code)
	}

	// clear resets to zero on the debit side
	rec = doJSON(t, h, http.MethodDelete, "/v1/ledger-accounts/2/opening-balance", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cleared := decode[accountResponse](t, rec)
	if !cleared.OpeningBalance.IsZero() || cleared.OpeningBalanceType != "Dr" {
		t.Fatalf("expected cleared balance 0 Dr, got %+v", cleared)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/ledger-accounts/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func voucherBody(entries []map[string]any) map[string]any {
	return map[string]any{
		"voucher_type": "journal",
		"voucher_date": "2025-04-10",
		"narration":    "opening adjustments",
		"entries":      entries,
	}
}

func TestVouchers_CreateValidateAndPost(t *testing.T) {
	_, h := setup(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/vouchers", voucherBody([]map[string]any{
		{"ledger_id": 1, "debit": 1500},
		{"ledger_id": 2, "credit": 1500},
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[voucherResponse](t, rec)
	if created.Status != "submitted" || !created.TotalAmount.Equal(dec("1500")) {
		t.Fatalf("unexpected voucher: %+v", created)
	}

	// unbalanced
	rec = doJSON(t, h, http.MethodPost, "/v1/vouchers", voucherBody([]map[string]any{
		{"ledger_id": 1, "debit": 1500},
		{"ledger_id": 2, "credit": 1400},
	}))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if er := decode[errorResponse](t, rec); er.Code != "unbalanced_voucher" {
		t.Fatalf("expected unbalanced_voucher, got %+v", er)
	}

	// fewer than two entries
	rec = doJSON(t, h, http.MethodPost, "/v1/vouchers", voucherBody([]map[string]any{
		{"ledger_id": 1, "debit": 1500},
	}))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if er := decode[errorResponse](t, rec); er.Code != "too_few_entries" {
		t.Fatalf("expected too_few_entries, got %+v", er)
	}

	// unknown ledger
	rec = doJSON(t, h, http.MethodPost, "/v1/vouchers", voucherBody([]map[string]any{
		{"ledger_id": 99, "debit": 100},
		{"ledger_id": 2, "credit": 100},
	}))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	// post, then verify the transition is terminal
	rec = doJSON(t, h, http.MethodPost, "/v1/vouchers/"+created.ID.String()+"/post", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if posted := decode[voucherResponse](t, rec); posted.Status != "posted" {
		t.Fatalf("expected posted, got %+v", posted)
	}

	rec = doJSON(t, h, http.MethodPatch, "/v1/vouchers/"+created.ID.String(), voucherBody([]map[string]any{
		{"ledger_id": 1, "debit": 2000},
		{"ledger_id": 2, "credit": 2000},
	}))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 editing posted voucher, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, h, http.MethodDelete, "/v1/vouchers/"+created.ID.String(), nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 deleting posted voucher, got %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodPost, "/v1/vouchers/"+created.ID.String()+"/post", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 reposting, got %d", rec.Code)
	}
}

func TestVouchers_ListFilters(t *testing.T) {
	_, h := setup(t)

	first := voucherBody([]map[string]any{
		{"ledger_id": 1, "debit": 100},
		{"ledger_id": 2, "credit": 100},
	})
	if rec := doJSON(t, h, http.MethodPost, "/v1/vouchers", first); rec.Code != http.StatusCreated {
		t.Fatalf("seed voucher 1: %d %s", rec.Code, rec.Body.String())
	}
	second := voucherBody([]map[string]any{
		{"ledger_id": 1, "debit": 200},
		{"ledger_id": 2, "credit": 200},
	})
	second["voucher_type"] = "contra"
	second["voucher_date"] = "2025-05-01"
	if rec := doJSON(t, h, http.MethodPost, "/v1/vouchers", second); rec.Code != http.StatusCreated {
		t.Fatalf("seed voucher 2: %d %s", rec.Code, rec.Body.String())
	}

	rec := doJSON(t, h, http.MethodGet, "/v1/vouchers?voucher_type=contra", nil)
	list := decode[[]voucherResponse](t, rec)
	if len(list) != 1 || list[0].Type != "contra" {
		t.Fatalf("unexpected filtered list: %+v", list)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/vouchers?from=2025-04-20", nil)
	if list = decode[[]voucherResponse](t, rec); len(list) != 1 || list[0].Date != "2025-05-01" {
		t.Fatalf("unexpected date-filtered list: %+v", list)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/vouchers?voucher_type=weird", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOpeningBalances_ImportAndTrialBalance(t *testing.T) {
	_, h := setup(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/trial-balance", nil)
	tb := decode[trialBalanceResponse](t, rec)
	if !tb.Balanced || !tb.TotalDebit.Equal(dec("50000")) || !tb.TotalCredit.Equal(dec("50000")) {
		t.Fatalf("seed trial balance should balance: %+v", tb)
	}

	csvBody := "Ledger Name,Debit Balance,Credit Balance\n" +
		"Cash in Hand,\"60,000\",0\n" +
		"Unknown Ledger,10,0\n"
	rec = doMultipart(t, h, "/v1/opening-balances/import", "balances.csv", csvBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	imp := decode[importResponse](t, rec)
	if imp.Accepted != 1 || imp.Succeeded != 1 || len(imp.Rejected) != 1 {
		t.Fatalf("unexpected import result: %+v", imp)
	}
	if imp.Rejected[0].Reason != "Ledger not found" {
		t.Fatalf("unexpected rejection: %+v", imp.Rejected[0])
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/trial-balance", nil)
	tb = decode[trialBalanceResponse](t, rec)
	if tb.Balanced || !tb.TotalDebit.Equal(dec("60000")) || !tb.Difference.Equal(dec("10000")) {
		t.Fatalf("trial balance after import: %+v", tb)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/opening-balances", nil)
	records := decode[[]openingRecordDTO](t, rec)
	if len(records) != 2 {
		t.Fatalf("expected 2 opening records, got %+v", records)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/opening-balances/template", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || rr.Header().Get("Content-Type") != "text/csv" {
		t.Fatalf("unexpected template response: %d %q", rr.Code, rr.Header().Get("Content-Type"))
	}
	if !strings.Contains(rr.Body.String(), "Ledger Name") {
		t.Fatalf("template missing header: %s", rr.Body.String())
	}
}

func TestClients_CreateAndGSTINGate(t *testing.T) {
	_, h := setup(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/clients", map[string]any{
		"name": "Acme Traders", "email": "accounts@acmetraders.in",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[clientResponse](t, rec)
	if created.Code != "CL0001" {
		t.Fatalf("expected generated code CL0001, got %+v", created)
	}

	// valid 15-char GSTIN whose prefix matches the state
	rec = doJSON(t, h, http.MethodPost, "/v1/clients", map[string]any{
		"name": "Bombay Mills", "email": "ap@bombaymills.in",
		"state": "Maharashtra", "state_code": "27", "gstin": "27ABCDE1234F1Z5",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// wrong length
	rec = doJSON(t, h, http.MethodPost, "/v1/clients", map[string]any{
		"name": "Short GST", "email": "x@example.in", "state_code": "27", "gstin": "27ABCDE1234F1Z",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if er := decode[errorResponse](t, rec); er.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %+v", er)
	}

	// state prefix mismatch
	rec = doJSON(t, h, http.MethodPost, "/v1/clients", map[string]any{
		"name": "Wrong State", "email": "y@example.in", "state_code": "27", "gstin": "07ABCDE1234F1Z5",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	// the gate also applies on update
	rec = doJSON(t, h, http.MethodPatch, "/v1/clients/1", map[string]any{
		"name": "Acme Traders", "email": "accounts@acmetraders.in", "state_code": "27", "gstin": "bad",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 on update, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestClients_BulkUpload(t *testing.T) {
	_, h := setup(t)

	rec := doMultipart(t, h, "/v1/clients/bulk-upload", "clients.csv", client.Template())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	res := decode[importResponse](t, rec)
	if res.Accepted != 2 || res.Succeeded != 2 || res.Failed != 0 {
		t.Fatalf("unexpected bulk result: %+v", res)
	}

	// a bad row is reported but never aborts the batch
	csvBody := strings.SplitN(client.Template(), "\n", 2)[0] + "\n" +
		"Bad GST,,bad@example.in,,,,,Maharashtra,,27,07ABCDE1234F1Z5,,,\n" +
		"Good,,good@example.in,,,,,,,,,,,\n"
	rec = doMultipart(t, h, "/v1/clients/bulk-upload", "clients.csv", csvBody)
	res = decode[importResponse](t, rec)
	if res.Accepted != 1 || res.Succeeded != 1 || res.Failed != 1 || len(res.Rejected) != 1 {
		t.Fatalf("unexpected bulk result: %+v", res)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/clients/template", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "Client Name*") {
		t.Fatalf("unexpected template: %d %s", rr.Code, rr.Body.String())
	}
}

func TestPayments_ReceiptLifecycle(t *testing.T) {
	_, h := setup(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/payments", map[string]any{
		"date":                "2025-04-15",
		"cash_bank_ledger_id": 1,
		"counter_ledger_id":   2,
		"amount":              10000,
		"tds_amount":          1000,
		"gst_tds_amount":      200,
		"post_to_ledger":      true,
		"narration":           "INV-042 settled",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[paymentResponse](t, rec)
	if !created.AmountReceived.Equal(dec("8800")) {
		t.Fatalf("expected amount_received 8800, got %+v", created)
	}
	if created.VoucherID == nil {
		t.Fatalf("expected a posted voucher: %+v", created)
	}

	// the receipt voucher debits the cash/bank ledger for the gross amount
	rec = doJSON(t, h, http.MethodGet, "/v1/vouchers/"+created.VoucherID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("voucher fetch: %d %s", rec.Code, rec.Body.String())
	}
	v := decode[voucherResponse](t, rec)
	if v.Type != "receipt" || len(v.Entries) != 2 {
		t.Fatalf("unexpected voucher: %+v", v)
	}
	if v.Entries[0].LedgerID != 1 || !v.Entries[0].Debit.Equal(dec("10000")) {
		t.Fatalf("unexpected debit leg: %+v", v.Entries[0])
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/payments", nil)
	if list := decode[[]paymentResponse](t, rec); len(list) != 1 {
		t.Fatalf("expected 1 receipt, got %+v", list)
	}
	// receipts never show up under expense payments
	rec = doJSON(t, h, http.MethodGet, "/v1/expense-payments", nil)
	if list := decode[[]paymentResponse](t, rec); len(list) != 0 {
		t.Fatalf("expected no expense payments, got %+v", list)
	}

	// zero amount is rejected
	rec = doJSON(t, h, http.MethodPost, "/v1/payments", map[string]any{
		"date": "2025-04-15", "cash_bank_ledger_id": 1, "counter_ledger_id": 2, "amount": 0,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPost, "/v1/payments/bulk-delete", map[string]any{
		"ids": []int64{created.ID, 999},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if res := decode[bulkResultDTO](t, rec); res.Succeeded != 1 || res.Failed != 1 {
		t.Fatalf("unexpected bulk-delete result: %+v", res)
	}

	rec = doJSON(t, h, http.MethodPost, "/v1/payments/bulk-delete", map[string]any{"ids": []int64{}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty ids, got %d", rec.Code)
	}
}

func TestReminders_Flow(t *testing.T) {
	store, h := setup(t)
	store.SeedClient(ledger.Client{ID: 1, Name: "Acme Traders", Email: "accounts@acmetraders.in"})

	rec := doJSON(t, h, http.MethodPost, "/v1/reminders", map[string]any{
		"client_id": 1, "invoice_ref": "INV-042", "due_date": "2025-05-01", "amount": 1200,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[reminderResponse](t, rec)
	if created.Status != "scheduled" {
		t.Fatalf("expected scheduled, got %+v", created)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/reminders/pending", nil)
	pending := decode[[]pendingInvoiceDTO](t, rec)
	if len(pending) != 1 || pending[0].ClientName != "Acme Traders" {
		t.Fatalf("unexpected pending list: %+v", pending)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/reminders/scheduled", nil)
	if list := decode[[]reminderResponse](t, rec); len(list) != 1 {
		t.Fatalf("expected 1 scheduled, got %+v", list)
	}

	rec = doJSON(t, h, http.MethodPost, "/v1/reminders/send", map[string]any{"ids": []int64{created.ID}})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if res := decode[bulkResultDTO](t, rec); res.Succeeded != 1 || res.Failed != 0 {
		t.Fatalf("unexpected send result: %+v", res)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/reminders/history", nil)
	history := decode[[]reminderResponse](t, rec)
	if len(history) != 1 || history[0].Status != "sent" || history[0].SentAt == nil {
		t.Fatalf("unexpected history: %+v", history)
	}

	// a sent reminder cannot be cancelled
	rec = doJSON(t, h, http.MethodPost, "/v1/reminders/1/cancel", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPut, "/v1/reminders/settings", map[string]any{
		"enabled": true, "days_before": 3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, h, http.MethodGet, "/v1/reminders/settings", nil)
	if set := decode[reminderSettingsDTO](t, rec); !set.Enabled || set.DaysBefore != 3 {
		t.Fatalf("unexpected settings: %+v", set)
	}
}

func TestDictionaryAndMisc(t *testing.T) {
	_, h := setup(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/dictionary/groups?account_type=bank", nil)
	groups := decode[[]map[string]any](t, rec)
	if len(groups) != 2 {
		t.Fatalf("expected 2 bank groups, got %+v", groups)
	}
	rec = doJSON(t, h, http.MethodGet, "/v1/dictionary/groups?account_type=nope", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/dictionary/states", nil)
	states := decode[[]map[string]string](t, rec)
	if len(states) != 36 || states[0]["code"] != "01" {
		t.Fatalf("unexpected states dictionary: %d entries", len(states))
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/financial-years/current", nil)
	fy := decode[financialYearResponse](t, rec)
	if !strings.HasSuffix(fy.Start, "-04-01") || !strings.HasSuffix(fy.End, "-03-31") {
		t.Fatalf("unexpected financial year: %+v", fy)
	}

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		rec = doJSON(t, h, http.MethodGet, path, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
