package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/scheme-payments/internal/domain"
	"github.com/josh-kwaku/scheme-payments/internal/logging"
	"github.com/josh-kwaku/scheme-payments/internal/validation"
)

type accountStore interface {
	GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account *domain.Account) error
}

type Service struct {
	accounts   accountStore
	validators *validation.Registry
}

func NewService(accounts accountStore, validators *validation.Registry) *Service {
	return &Service{
		accounts:   accounts,
		validators: validators,
	}
}

// MakePayment validates req against the debtor account using the rules for
// req.PaymentScheme and, when valid, debits and saves the account.
//
// Business rejections are reported in the result. The error is reserved for
// datastore failures, an unregistered scheme or an amount that is not
// positive or has more than domain.AmountScale decimal places.
func (s *Service) MakePayment(ctx context.Context, req domain.MakePaymentRequest) (domain.MakePaymentResult, error) {
	log := logging.FromContext(ctx)

	if !req.Amount.IsPositive() {
		return domain.MakePaymentResult{}, fmt.Errorf("MakePayment: not positive: %w", domain.ErrInvalidAmount)
	}
	if !domain.FitsAmountScale(req.Amount) {
		return domain.MakePaymentResult{}, fmt.Errorf("MakePayment: more than %d decimal places: %w",
			domain.AmountScale, domain.ErrInvalidAmount)
	}

	account, err := s.findAccount(ctx, req.DebtorAccountNumber)
	if err != nil {
		return domain.MakePaymentResult{}, fmt.Errorf("MakePayment: %w", err)
	}

	vc := &validation.Context{Account: account, Request: req}

	validator, err := s.validators.For(req.PaymentScheme)
	if err != nil {
		return domain.MakePaymentResult{}, fmt.Errorf("MakePayment: %w", err)
	}

	res := validator.Validate(vc)
	if !res.Valid {
		log.Info("payment rejected",
			"debtor_account", req.DebtorAccountNumber,
			"scheme", req.PaymentScheme,
			"amount", req.Amount,
			"reason", res.Reason,
			"rule", res.Rule,
		)
		return domain.Failed(res.Reason), nil
	}

	if err := s.applyAndSave(ctx, account, req.Amount); err != nil {
		return domain.MakePaymentResult{}, fmt.Errorf("MakePayment: %w", err)
	}

	log.Info("payment applied",
		"debtor_account", req.DebtorAccountNumber,
		"scheme", req.PaymentScheme,
		"amount", req.Amount,
		"balance_after", account.Balance,
	)

	return domain.Succeeded(), nil
}

// findAccount returns nil, nil when the account does not exist.
func (s *Service) findAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	account, err := s.accounts.GetAccount(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("findAccount: %w", err)
	}
	return account, nil
}

// applyAndSave must only be called after validation has passed.
func (s *Service) applyAndSave(ctx context.Context, account *domain.Account, amount decimal.Decimal) error {
	account.Debit(amount)
	if err := s.accounts.UpdateAccount(ctx, account); err != nil {
		return fmt.Errorf("applyAndSave: %w", err)
	}
	return nil
}
