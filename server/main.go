package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-currency-converter/config"
	"go-currency-converter/domain"
	"go-currency-converter/exchange"
	"go-currency-converter/format"
	"go-currency-converter/http"
	"go-currency-converter/rates"

	nhttp "net/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rateMetrics := rates.NewMetrics(registry)

	base := domain.Currency(cfg.Rates.Base)

	primary := rates.NewService(cfg.Rates.PrimaryURL, base, cfg.Rates.Timeout)
	primary = rates.NewLoggingService(log.With(logger, "component", "rates_primary"), primary)
	primary = rates.NewInstrumentingService(rateMetrics, "primary", primary)

	fallback := rates.NewService(cfg.Rates.FallbackURL, base, cfg.Rates.Timeout)
	fallback = rates.NewLoggingService(log.With(logger, "component", "rates_fallback"), fallback)
	fallback = rates.NewInstrumentingService(rateMetrics, "fallback", fallback)

	ratesService := rates.NewFallbackService(log.With(logger, "component", "rates"), primary, fallback)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// the single load; the server answers "not loaded" until it finishes
	table := rates.NewTable()
	go func() {
		if err := table.Load(ctx, ratesService); err != nil {
			level.Error(logger).Log("msg", "failed to load exchange rates", "err", err)
			return
		}
		level.Info(logger).Log("msg", "exchange rates loaded", "base", base)
	}()

	convertService := exchange.NewService(table)
	convertService = exchange.NewLoggingService(log.With(logger, "component", "convert"), convertService)
	convertService = exchange.NewInstrumentingService(registry, convertService)

	handler := http.NewServer(convertService,
		http.WithFormatter(format.New(cfg.Display.Locale)),
		http.WithDefaults(http.Defaults{
			From:   domain.Currency(cfg.Display.From),
			To:     domain.Currency(cfg.Display.To),
			Amount: domain.Amount(cfg.Display.Amount),
		}),
		http.WithMetrics(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
		http.WithLogger(log.With(logger, "component", "http")),
	)

	server := &nhttp.Server{
		Addr:        cfg.HTTP.Addr,
		Handler:     handler,
		ReadTimeout: cfg.HTTP.ReadTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		level.Info(logger).Log("msg", "listening", "addr", cfg.HTTP.Addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, nhttp.ErrServerClosed) {
			level.Error(logger).Log("msg", "server failed", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		level.Info(logger).Log("msg", "shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "shutdown failed", "err", err)
	}
}

func newLogger(cfg config.Log) log.Logger {
	w := log.NewSyncWriter(os.Stderr)

	var logger log.Logger
	if cfg.Format == "json" {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}

	var allow level.Option
	switch cfg.Level {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}
