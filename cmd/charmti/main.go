package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MikeSquared-Agency/CharMTI/internal/api"
	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
	"github.com/MikeSquared-Agency/CharMTI/internal/catalog"
	"github.com/MikeSquared-Agency/CharMTI/internal/config"
	"github.com/MikeSquared-Agency/CharMTI/internal/events"
	"github.com/MikeSquared-Agency/CharMTI/internal/metrics"
	"github.com/MikeSquared-Agency/CharMTI/internal/scoring"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	envPath := flag.String("env", ".env", "path to .env file")
	flag.Parse()

	if err := config.LoadDotEnv(*envPath); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load env file:", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger := cfg.Logging.NewLogger()
	slog.SetDefault(logger)

	// Statement bank
	b, err := loadBank(cfg.Bank.Path)
	if err != nil {
		logger.Error("failed to load statement bank", "path", cfg.Bank.Path, "error", err)
		os.Exit(1)
	}
	logger.Info("statement bank loaded", "statements", b.Len())

	// Description catalog
	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		logger.Error("failed to load catalog", "path", cfg.Catalog.Path, "error", err)
		os.Exit(1)
	}
	if err := cat.Validate(); err != nil {
		logger.Warn("catalog incomplete, fallback text will be served", "error", err)
	}

	// Events (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		nc, err := events.NewNATSClient(cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to nats, running without events", "error", err)
		} else {
			eventsClient = nc
			defer nc.Close()
			logger.Info("connected to nats", "url", cfg.Events.URL)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	engine := scoring.NewEngine(b, cat, logger)

	// API server
	apiServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           api.NewRouter(engine, eventsClient, m, cfg.Server.RateLimitPerMinute, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler:           api.NewMetricsRouter(reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}

func loadBank(path string) (*bank.Bank, error) {
	if path == "" {
		return bank.Default(), nil
	}
	return bank.LoadFile(path)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}
