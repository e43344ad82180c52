// Package v1 wires the HTTP surface of the GST ledger service.
// It keeps handlers thin, delegating business rules to the service layer.
package v1

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nexinvo/gstledger/internal/service/account"
	"github.com/nexinvo/gstledger/internal/service/client"
	"github.com/nexinvo/gstledger/internal/service/payment"
	"github.com/nexinvo/gstledger/internal/service/reminder"
	"github.com/nexinvo/gstledger/internal/service/voucher"
)

// Store bundles every repository and writer interface the services need.
// Both storage backends satisfy it.
type Store interface {
	account.Repo
	account.Writer
	voucher.Repo
	voucher.Writer
	client.Repo
	client.Writer
	payment.Repo
	payment.Writer
	reminder.Repo
	reminder.Writer
}

// Options carries the HTTP-layer knobs main wires from config.
type Options struct {
	CORSOrigins []string
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
}

// Server wires handlers and middleware using Chi.
type Server struct {
	accounts  account.Service
	vouchers  voucher.Service
	clients   client.Service
	payments  payment.Service
	reminders reminder.Service
	store     Store
	log       *slog.Logger
	rt        *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
// The logger is used by basic request/response logging and panic recovery.
func New(store Store, sender reminder.Sender, logger *slog.Logger, opts Options) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if auth := authJWT(opts.JWTSecret, opts.JWTIssuer, opts.JWTAudience); auth != nil {
		r.Use(auth)
	}

	accountSvc := account.New(store, store)
	voucherSvc := voucher.New(store, store)
	s := &Server{
		accounts:  accountSvc,
		vouchers:  voucherSvc,
		clients:   client.New(store, store),
		payments:  payment.New(store, store, accountSvc, voucherSvc),
		reminders: reminder.New(store, store, sender),
		store:     store,
		log:       logger,
		rt:        r,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints and attaches per-route
// middleware.
func (s *Server) routes() {
	// Ledger accounts
	s.rt.Get("/v1/ledger-accounts", s.listAccounts)
	s.rt.With(s.validatePostAccount()).Post("/v1/ledger-accounts", s.postAccount)
	s.rt.Get("/v1/ledger-accounts/{id}", s.getAccount)
	s.rt.Patch("/v1/ledger-accounts/{id}", s.updateAccount)
	s.rt.Delete("/v1/ledger-accounts/{id}", s.deactivateAccount)
	s.rt.Patch("/v1/ledger-accounts/{id}/opening-balance", s.patchOpeningBalance)
	s.rt.Delete("/v1/ledger-accounts/{id}/opening-balance", s.clearOpeningBalance)

	// Vouchers
	s.rt.Get("/v1/vouchers", s.listVouchers)
	s.rt.With(s.validatePostVoucher()).Post("/v1/vouchers", s.postVoucher)
	s.rt.Get("/v1/vouchers/{id}", s.getVoucher)
	s.rt.Patch("/v1/vouchers/{id}", s.updateVoucher)
	s.rt.Delete("/v1/vouchers/{id}", s.deleteVoucher)
	s.rt.Post("/v1/vouchers/{id}/post", s.postVoucherTransition)

	// Opening balances and trial balance
	s.rt.Get("/v1/opening-balances", s.listOpeningBalances)
	s.rt.Get("/v1/trial-balance", s.trialBalance)
	s.rt.Post("/v1/opening-balances/import", s.importOpeningBalances)
	s.rt.Get("/v1/opening-balances/template", s.openingTemplate)

	// Clients
	s.rt.Get("/v1/clients", s.listClients)
	s.rt.Post("/v1/clients", s.postClient)
	s.rt.Get("/v1/clients/{id}", s.getClient)
	s.rt.Patch("/v1/clients/{id}", s.updateClient)
	s.rt.Delete("/v1/clients/{id}", s.deleteClient)
	s.rt.Post("/v1/clients/bulk-upload", s.bulkUploadClients)
	s.rt.Get("/v1/clients/template", s.clientTemplate)

	// Payments (money received) and expense payments (money paid out)
	s.rt.Get("/v1/payments", s.listReceipts)
	s.rt.Post("/v1/payments", s.postReceipt)
	s.rt.Patch("/v1/payments/{id}", s.updateReceipt)
	s.rt.Delete("/v1/payments/{id}", s.deletePayment)
	s.rt.Post("/v1/payments/bulk-delete", s.bulkDeletePayments)
	s.rt.Get("/v1/expense-payments", s.listExpensePayments)
	s.rt.Post("/v1/expense-payments", s.postExpensePayment)
	s.rt.Patch("/v1/expense-payments/{id}", s.updateExpensePayment)
	s.rt.Delete("/v1/expense-payments/{id}", s.deletePayment)

	// Reminders
	s.rt.Get("/v1/reminders/pending", s.pendingInvoices)
	s.rt.Get("/v1/reminders/scheduled", s.scheduledReminders)
	s.rt.Get("/v1/reminders/history", s.reminderHistory)
	s.rt.Post("/v1/reminders", s.scheduleReminder)
	s.rt.Post("/v1/reminders/send", s.sendReminders)
	s.rt.Post("/v1/reminders/{id}/cancel", s.cancelReminder)
	s.rt.Get("/v1/reminders/settings", s.getReminderSettings)
	s.rt.Put("/v1/reminders/settings", s.putReminderSettings)

	// Dictionary
	s.rt.Get("/v1/dictionary/groups", s.listGroups)
	s.rt.Get("/v1/dictionary/states", s.listStates)

	// Misc
	s.rt.Get("/v1/financial-years/current", s.currentFinancialYear)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Handle("/metrics", metricsHandler())
}
