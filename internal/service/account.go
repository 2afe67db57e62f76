package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/scheme-payments/internal/domain"
	"github.com/josh-kwaku/scheme-payments/internal/logging"
)

type accountRepo interface {
	GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) error
}

type AccountService struct {
	accounts accountRepo
}

func NewAccountService(accounts accountRepo) *AccountService {
	return &AccountService{accounts: accounts}
}

type CreateAccountRequest struct {
	AccountNumber  string
	OpeningBalance decimal.Decimal
	Status         domain.AccountStatus
	AllowedSchemes domain.AllowedPaymentSchemes
}

func (s *AccountService) CreateAccount(ctx context.Context, req CreateAccountRequest) (*domain.Account, error) {
	log := logging.FromContext(ctx)

	if req.AccountNumber == "" {
		return nil, fmt.Errorf("CreateAccount: account number required: %w", domain.ErrInvalidRequest)
	}
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("CreateAccount: %q: %w", req.Status, domain.ErrInvalidStatus)
	}
	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("CreateAccount: negative opening balance: %w", domain.ErrInvalidAmount)
	}
	if !domain.FitsAmountScale(req.OpeningBalance) {
		return nil, fmt.Errorf("CreateAccount: opening balance has more than %d decimal places: %w",
			domain.AmountScale, domain.ErrInvalidAmount)
	}

	_, err := s.accounts.GetAccount(ctx, req.AccountNumber)
	if err == nil {
		return nil, fmt.Errorf("CreateAccount: %w", domain.ErrAccountExists)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("CreateAccount: check existing: %w", err)
	}

	account := &domain.Account{
		AccountNumber:         req.AccountNumber,
		Balance:               req.OpeningBalance,
		Status:                req.Status,
		AllowedPaymentSchemes: req.AllowedSchemes,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("CreateAccount: %w", err)
	}

	log.Info("account created",
		"account_number", account.AccountNumber,
		"status", account.Status,
		"allowed_schemes", account.AllowedPaymentSchemes.String(),
	)

	return account, nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	account, err := s.accounts.GetAccount(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("GetAccount: %w", err)
	}
	return account, nil
}
