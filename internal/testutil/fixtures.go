package testutil

import (
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/scheme-payments/internal/domain"
)

func SeedAccount(t *testing.T, db *sql.DB, accountNumber, balance string, status domain.AccountStatus, allowed domain.AllowedPaymentSchemes) *domain.Account {
	t.Helper()

	a := &domain.Account{
		AccountNumber:         accountNumber,
		Balance:               decimal.RequireFromString(balance),
		Status:                status,
		AllowedPaymentSchemes: allowed,
	}

	_, err := db.Exec(
		`INSERT INTO accounts (account_number, balance, status, allowed_schemes)
		 VALUES ($1, $2, $3, $4)`,
		a.AccountNumber, a.Balance, a.Status, pq.Array(allowed.Strings()),
	)
	if err != nil {
		t.Fatalf("seed account %s: %v", accountNumber, err)
	}
	return a
}

func GetAccountBalance(t *testing.T, db *sql.DB, accountNumber string) decimal.Decimal {
	t.Helper()

	var balance decimal.Decimal
	err := db.QueryRow(`SELECT balance FROM accounts WHERE account_number = $1`, accountNumber).Scan(&balance)
	if err != nil {
		t.Fatalf("get account balance %s: %v", accountNumber, err)
	}
	return balance
}
