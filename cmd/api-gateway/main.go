package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/trustlynk-backend/internal/app"
	"github.com/goodnatureofminers/trustlynk-backend/internal/insurance"
	journalch "github.com/goodnatureofminers/trustlynk-backend/internal/journal/clickhouse"
	"github.com/goodnatureofminers/trustlynk-backend/internal/logging"
	"github.com/goodnatureofminers/trustlynk-backend/internal/metrics"
	"github.com/goodnatureofminers/trustlynk-backend/internal/transport"
	"github.com/goodnatureofminers/trustlynk-backend/internal/wallet"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	Addr          string              `long:"addr" env:"API_GATEWAY_ADDR" description:"REST listen address" default:":8001"`
	ClickhouseDSN string              `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN of the invocation journal, history endpoints are disabled when empty"`
	LogLevel      string              `long:"log-level" env:"API_GATEWAY_LOG_LEVEL" description:"log level" default:"info"`
	LogDev        bool                `long:"log-dev" env:"API_GATEWAY_LOG_DEV" description:"human readable logs"`
	Contract      app.ContractOptions `group:"contract" env-namespace:"API_GATEWAY"`
}

func main() {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	// The gateway only reads, so it never holds a key.
	readOnly, err := wallet.NewKeypair(logger, "", nil)
	if err != nil {
		return err
	}
	contract, err := app.NewContract(logger, cfg.Contract, readOnly, nil)
	if err != nil {
		return fmt.Errorf("init contract client: %w", err)
	}
	defer func() {
		_ = contract.Close()
	}()

	var history transport.History
	if cfg.ClickhouseDSN != "" {
		repo, err := journalch.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init journal repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		history = repo
	}

	reader := insurance.NewFallback(logger, contract.Queries, metrics.NewQueryFallback())
	handler := transport.NewHandler(logger, reader, history, metrics.NewHTTPGateway(), transport.WithNode(contract))

	mux := http.NewServeMux()
	mux.Handle("/", handler.Routes())
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", cfg.Addr),
		zap.String("network", cfg.Contract.Network),
		zap.String("contract", cfg.Contract.ContractID),
		zap.Bool("history", history != nil),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
