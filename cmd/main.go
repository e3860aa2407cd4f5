package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rgavilanes/contable/internal/chart"
	"github.com/rgavilanes/contable/internal/httpapi"
	"github.com/rgavilanes/contable/internal/ledger"
	"github.com/rgavilanes/contable/internal/storage/memory"
	pgstore "github.com/rgavilanes/contable/internal/storage/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Logger (slog to stdout). Level via LOG_LEVEL; format via LOG_FORMAT (json|text, default json)
	logger := buildLoggerFromEnv()
	slog.SetDefault(logger)

	taxRate := parseTaxRate(os.Getenv("TAX_RATE"), logger)
	currency := strings.TrimSpace(os.Getenv("CURRENCY"))
	if currency == "" {
		currency = "USD"
	}

	var store httpapi.Store
	var closeFn func()

	if dsn := strings.TrimSpace(os.Getenv("DATABASE_URL")); dsn != "" {
		pg, err := pgstore.Open(ctx, dsn)
		if err != nil {
			logger.Error("failed to connect to postgres", "err", err)
			os.Exit(1)
		}
		closeFn = func() { pg.Close() }
		if devSeedEnabled() {
			accs, err := pg.SeedDev(ctx)
			if err != nil {
				logger.Error("dev seed failed", "err", err)
			} else {
				logger.Info("DEV seed (postgres)", "accounts", len(accs))
			}
		}
		store = pg
		logger.Info("storage backend: postgres")
	} else {
		mem := memory.New()
		if devSeedEnabled() {
			accs := chart.Default()
			mem.SeedAccounts(accs)
			logger.Info("DEV seed (memory)", "accounts", len(accs))
		}
		store = mem
		logger.Info("storage backend: memory")
	}

	addr := strings.TrimSpace(os.Getenv("ADDR"))
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.New(store, taxRate, currency, logger).Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("accounting service listening", "addr", srv.Addr)
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

func devSeedEnabled() bool {
	dev := strings.ToLower(strings.TrimSpace(os.Getenv("DEV_SEED")))
	return dev == "1" || dev == "true" || dev == "yes"
}

// parseTaxRate reads TAX_RATE as a fraction (0.13 means 13%).
func parseTaxRate(s string, l *slog.Logger) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return ledger.DefaultTaxRate
	}
	rate, err := strconv.ParseFloat(s, 64)
	if err != nil || rate < 0 || rate >= 1 {
		l.Warn("invalid TAX_RATE, using default", "value", s)
		return ledger.DefaultTaxRate
	}
	return rate
}

// parseLogLevel maps env values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch s {
	case "DEBUG", "debug":
		return slog.LevelDebug
	case "WARN", "WARNING", "warn", "warning":
		return slog.LevelWarn
	case "ERROR", "ERR", "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLoggerFromEnv() *slog.Logger {
	level := parseLogLevel(os.Getenv("LOG_LEVEL"))
	format := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT")))
	if format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	// default to JSON
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
