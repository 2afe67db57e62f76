package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/josh-kwaku/scheme-payments/internal/domain"
)

const accountColumns = `account_number, balance, status, allowed_schemes`

type scanner interface {
	Scan(dest ...any) error
}

// AccountRepository is the primary account store, backed by Postgres.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE account_number = $1`, accountNumber,
	)
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetAccount: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetAccount: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (account_number, balance, status, allowed_schemes)
		VALUES ($1, $2, $3, $4)`,
		account.AccountNumber, account.Balance, account.Status,
		pq.Array(account.AllowedPaymentSchemes.Strings()),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("Create: %w", domain.ErrAccountExists)
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// UpdateAccount overwrites the stored state for account.AccountNumber.
func (r *AccountRepository) UpdateAccount(ctx context.Context, account *domain.Account) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts
		SET balance = $1, status = $2, allowed_schemes = $3, updated_at = NOW()
		WHERE account_number = $4`,
		account.Balance, account.Status,
		pq.Array(account.AllowedPaymentSchemes.Strings()),
		account.AccountNumber,
	)
	if err != nil {
		return fmt.Errorf("UpdateAccount: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdateAccount: rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("UpdateAccount: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *AccountRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *AccountRepository) Close() error {
	return r.db.Close()
}

func scanAccount(s scanner) (*domain.Account, error) {
	var (
		a       domain.Account
		schemes []string
	)
	err := s.Scan(&a.AccountNumber, &a.Balance, &a.Status, pq.Array(&schemes))
	if err != nil {
		return nil, err
	}

	a.AllowedPaymentSchemes, err = domain.ParseAllowedPaymentSchemes(schemes)
	if err != nil {
		return nil, fmt.Errorf("scanAccount: %s: %w", a.AccountNumber, err)
	}
	return &a, nil
}
