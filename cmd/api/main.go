package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/league-portal/internal/app"
	"github.com/riskibarqy/league-portal/internal/config"
	"github.com/riskibarqy/league-portal/internal/observability"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	shipCore, drainLogs, err := observability.NewBetterStackCore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init betterstack: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel,
		logging.WithServiceFields(cfg.ServiceName, cfg.ServiceVersion, cfg.AppEnv),
		logging.WithTee(shipCore),
	)
	logging.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("service stopped with error", "error", err)
		flushLogs(logger, drainLogs)
		os.Exit(1)
	}
	flushLogs(logger, drainLogs)
}

func run(cfg config.Config, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := observability.InitUptrace(cfg, logger)
	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	pprofSrv := observability.StartPprofServer(cfg, logger)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	var serveErr error
	select {
	case serveErr = <-a.Start():
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := []error{serveErr}
	errs = append(errs,
		a.Shutdown(shutdownCtx),
		observability.StopPprofServer(shutdownCtx, pprofSrv),
		stopProfiler(),
		shutdownTracing(shutdownCtx),
	)
	if err := errors.Join(errs...); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}

// flushLogs waits briefly for shipped logs; failures go to stderr since the logger is closing.
func flushLogs(logger *logging.Logger, drain func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := drain(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "drain logs: %v\n", err)
	}
	_ = logger.Sync()
}
