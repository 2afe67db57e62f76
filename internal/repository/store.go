package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/josh-kwaku/scheme-payments/internal/config"
	"github.com/josh-kwaku/scheme-payments/internal/domain"
)

// AccountStore is implemented by both the primary and the backup store.
type AccountStore interface {
	GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account *domain.Account) error
	Create(ctx context.Context, account *domain.Account) error
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ AccountStore = (*AccountRepository)(nil)
	_ AccountStore = (*BackupAccountStore)(nil)
)

// NewAccountStore connects to the store selected by cfg.DataStoreType.
func NewAccountStore(ctx context.Context, cfg *config.Config) (AccountStore, error) {
	if cfg.UseBackupStore() {
		client, err := NewRedisClient(ctx, RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("NewAccountStore: %w", err)
		}
		return NewBackupAccountStore(client), nil
	}

	db, err := openPrimary(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("NewAccountStore: %w", err)
	}
	return NewAccountRepository(db), nil
}

// openPrimary opens the Postgres pool and refuses a database where the
// accounts table has not been migrated yet.
func openPrimary(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("openPrimary: open: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeS) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeS) * time.Second)

	var accountsTable sql.NullString
	if err := db.QueryRowContext(ctx, `SELECT to_regclass('public.accounts')::text`).Scan(&accountsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("openPrimary: ping: %w", err)
	}
	if !accountsTable.Valid {
		db.Close()
		return nil, fmt.Errorf("openPrimary: accounts table missing, run migrations")
	}

	return db, nil
}
