package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"adcustody/internal/adapter/http"
	"adcustody/internal/adapter/memory"
	"adcustody/internal/adapter/postgres"
	"adcustody/internal/adapter/usecase"
	"adcustody/internal/config"
	"adcustody/internal/core/port"
	"adcustody/internal/db"
)

type ledger interface {
	port.Ledger
	db.Funder
}

// main is the entry point of the custody service. It loads configuration,
// opens the configured ledger backend, applies genesis allocations, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		opts := cfg.Log.HandlerOptions()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, opts)
		default:
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var store ledger
	switch cfg.Ledger.Backend {
	case "memory":
		logger.Warn("using in-memory ledger; state is lost on exit")
		store = memory.NewLedger()
	case "postgres":
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		store = postgres.NewLedger(pool)
	default:
		logger.Error("unknown ledger backend", slog.String("backend", cfg.Ledger.Backend))
		return
	}

	allocations, err := cfg.Ledger.Allocations()
	if err != nil {
		logger.Error("invalid genesis", slog.Any("error", err))
		return
	}
	funded, err := db.Seed(ctx, store, allocations)
	if err != nil {
		logger.Error("genesis error", slog.Any("error", err))
		return
	}
	if funded > 0 {
		logger.Info("genesis applied", slog.Int("accounts", funded))
	}

	svc, err := usecase.NewCampaignUseCase(store, usecase.Config{
		ProgramID:   cfg.Ledger.ProgramID,
		Operator:    cfg.Ledger.Operator,
		StrictClose: cfg.Ledger.StrictClose,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("failed to create use case", slog.Any("error", err))
		return
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("program_id", cfg.Ledger.ProgramID.String()),
			slog.String("backend", cfg.Ledger.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
