package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/josh-kwaku/scheme-payments/internal/auth"
	"github.com/josh-kwaku/scheme-payments/internal/config"
	"github.com/josh-kwaku/scheme-payments/internal/handler"
	"github.com/josh-kwaku/scheme-payments/internal/logging"
	"github.com/josh-kwaku/scheme-payments/internal/middleware"
	"github.com/josh-kwaku/scheme-payments/internal/repository"
	"github.com/josh-kwaku/scheme-payments/internal/service"
	"github.com/josh-kwaku/scheme-payments/internal/service/payment"
	"github.com/josh-kwaku/scheme-payments/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Init("scheme-payments-api", cfg.LogLevel, cfg.AppEnv)

	store, err := connectStore(cfg)
	if err != nil {
		slog.Error("failed to connect to account store", "store", cfg.DataStoreType, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	payments := payment.NewService(store, validation.DefaultRegistry())
	accounts := service.NewAccountService(store)

	paymentHandler := handler.NewPaymentHandler(payments)
	accountHandler := handler.NewAccountHandler(accounts)
	healthHandler := handler.NewHealthHandler(store, cfg.DataStoreType)

	authed := middleware.Auth(cfg.JWTSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Liveness)
	mux.HandleFunc("GET /health/ready", healthHandler.Readiness)
	mux.Handle("POST /api/v1/payments",
		authed(middleware.RequireScope(auth.ScopePaymentsWrite, paymentHandler.Create)))
	mux.Handle("GET /api/v1/accounts/{accountNumber}",
		authed(middleware.RequireScope(auth.ScopeAccountsRead, accountHandler.Get)))

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           middleware.Chain(mux, middleware.Tracing, middleware.Logging(logger), middleware.Recovery),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr, "store", cfg.DataStoreType)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func connectStore(cfg *config.Config) (repository.AccountStore, error) {
	var err error
	for i := range 30 {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		var store repository.AccountStore
		store, err = repository.NewAccountStore(ctx, cfg)
		cancel()
		if err == nil {
			return store, nil
		}
		slog.Info("waiting for account store", "attempt", i+1, "error", err)
		time.Sleep(time.Second)
	}
	return nil, fmt.Errorf("connectStore: gave up after 30 attempts: %w", err)
}
