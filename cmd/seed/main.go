// Command seed creates accounts in the configured account store and prints a
// bearer token for calling the API.
//
//	seed -account 12345678 -balance 250.00 -status live -schemes bacs,faster_payments
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/scheme-payments/internal/auth"
	"github.com/josh-kwaku/scheme-payments/internal/config"
	"github.com/josh-kwaku/scheme-payments/internal/domain"
	"github.com/josh-kwaku/scheme-payments/internal/logging"
	"github.com/josh-kwaku/scheme-payments/internal/repository"
	"github.com/josh-kwaku/scheme-payments/internal/service"
)

func main() {
	var (
		accountNumber = flag.String("account", "", "account number to create")
		balance       = flag.String("balance", "0", "opening balance")
		status        = flag.String("status", string(domain.AccountStatusLive), "live, disabled or inbound_payments_only")
		schemes       = flag.String("schemes", "bacs,faster_payments,chaps", "comma separated allowed schemes")
		client        = flag.String("client", "", "if set, print a token for this client id")
		tokenTTL      = flag.Duration("token-ttl", 24*time.Hour, "token lifetime")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Init("scheme-payments-seed", cfg.LogLevel, cfg.AppEnv)

	if *accountNumber != "" {
		if err := seedAccount(cfg, *accountNumber, *balance, *status, *schemes); err != nil {
			slog.Error("seed failed", "error", err)
			os.Exit(1)
		}
	}

	if *client != "" {
		token, err := auth.GenerateToken(*client,
			[]string{auth.ScopePaymentsWrite, auth.ScopeAccountsRead}, cfg.JWTSecret, *tokenTTL)
		if err != nil {
			slog.Error("token generation failed", "error", err)
			os.Exit(1)
		}
		fmt.Println(token)
	}
}

func seedAccount(cfg *config.Config, accountNumber, balance, status, schemes string) error {
	opening, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("seedAccount: balance: %w", err)
	}

	allowed, err := domain.ParseAllowedPaymentSchemes(splitList(schemes))
	if err != nil {
		return fmt.Errorf("seedAccount: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := repository.NewAccountStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("seedAccount: %w", err)
	}
	defer store.Close()

	_, err = service.NewAccountService(store).CreateAccount(ctx, service.CreateAccountRequest{
		AccountNumber:  accountNumber,
		OpeningBalance: opening,
		Status:         domain.AccountStatus(status),
		AllowedSchemes: allowed,
	})
	if err != nil {
		return fmt.Errorf("seedAccount: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
