package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nexinvo/gstledger/internal/config"
	httpapi "github.com/nexinvo/gstledger/internal/httpapi/v1"
	"github.com/nexinvo/gstledger/internal/ledger"
	"github.com/nexinvo/gstledger/internal/service/reminder"
	"github.com/nexinvo/gstledger/internal/storage/memory"
	pgstore "github.com/nexinvo/gstledger/internal/storage/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger := buildLogger(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	var store httpapi.Store
	var closeFn func()

	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		pg, err := pgstore.Open(ctx, dsn)
		if err != nil {
			logger.Error("failed to connect to postgres", "err", err)
			os.Exit(1)
		}
		closeFn = func() { pg.Close() }
		if cfg.DevSeed {
			if accs, err := pg.SeedDev(ctx); err != nil {
				logger.Error("dev seed failed", "err", err)
			} else {
				logDevSeed(logger, "postgres", accs)
			}
		}
		store = pg
		logger.Info("storage backend: postgres")
	} else {
		mem := memory.New()
		accs := seedMemory(mem)
		logDevSeed(logger, "memory", accs)
		store = mem
		logger.Info("storage backend: memory")
	}

	sender := reminder.LogSender{Logger: logger}
	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: httpapi.New(store, sender, logger, httpapi.Options{
			CORSOrigins: cfg.Origins(),
			JWTSecret:   cfg.JWT.Secret,
			JWTIssuer:   cfg.JWT.Issuer,
			JWTAudience: cfg.JWT.Audience,
		}).Handler(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("gstledger service listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
	}
	if closeFn != nil {
		closeFn()
	}
}

// seedMemory loads the reserved system accounts plus a starter cash balance
// so the API is usable out of the box in dev mode.
func seedMemory(store *memory.Store) []ledger.LedgerAccount {
	accs := []ledger.LedgerAccount{
		{ID: 1, Name: "Cash in Hand", Group: "cash_in_hand", Type: ledger.AccountTypeCash,
			OpeningBalance: decimal.NewFromInt(50000), OpeningBalanceType: ledger.BalanceDr,
			CurrentBalance: decimal.NewFromInt(50000), CurrentBalanceType: ledger.BalanceDr,
			IsSystemAccount: true, Active: true},
		{ID: 2, Name: "Capital Account", Group: "capital_account", Type: ledger.AccountTypeEquity,
			OpeningBalance: decimal.NewFromInt(50000), OpeningBalanceType: ledger.BalanceCr,
			CurrentBalance: decimal.NewFromInt(50000), CurrentBalanceType: ledger.BalanceCr,
			IsSystemAccount: true, Active: true},
		{ID: 3, Name: "GST Payable", Group: "duties_taxes", Type: ledger.AccountTypeTax,
			OpeningBalanceType: ledger.BalanceCr, CurrentBalanceType: ledger.BalanceCr,
			IsSystemAccount: true, Active: true},
	}
	for _, a := range accs {
		store.SeedAccount(a)
	}
	return accs
}

// logDevSeed emits structured logs with the seeded account ids.
func logDevSeed(l *slog.Logger, backend string, accs []ledger.LedgerAccount) {
	ids := map[string]int64{}
	for _, a := range accs {
		ids[a.Group] = a.ID
	}
	l.Info("DEV seed ("+backend+")", "ids", ids)
}

// parseLogLevel maps env values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLogger(level, format string) *slog.Logger {
	lvl := parseLogLevel(level)
	if strings.ToLower(strings.TrimSpace(format)) == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	}
	// default to JSON
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
