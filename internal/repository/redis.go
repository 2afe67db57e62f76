package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/scheme-payments/internal/domain"
)

const backupAccountPrefix = "account:"

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("NewRedisClient: ping: %w", err)
	}
	return client, nil
}

// BackupAccountStore keeps one JSON document per account in Redis.
type BackupAccountStore struct {
	client *redis.Client
}

func NewBackupAccountStore(client *redis.Client) *BackupAccountStore {
	return &BackupAccountStore{client: client}
}

type storedAccount struct {
	AccountNumber  string          `json:"account_number"`
	Balance        decimal.Decimal `json:"balance"`
	Status         string          `json:"status"`
	AllowedSchemes []string        `json:"allowed_schemes"`
}

func backupKey(accountNumber string) string {
	return backupAccountPrefix + accountNumber
}

func (s *BackupAccountStore) GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	data, err := s.client.Get(ctx, backupKey(accountNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("GetAccount: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetAccount: %w", err)
	}

	var doc storedAccount
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("GetAccount: decode %s: %w", accountNumber, err)
	}

	allowed, err := domain.ParseAllowedPaymentSchemes(doc.AllowedSchemes)
	if err != nil {
		return nil, fmt.Errorf("GetAccount: %w", err)
	}

	return &domain.Account{
		AccountNumber:         doc.AccountNumber,
		Balance:               doc.Balance,
		Status:                domain.AccountStatus(doc.Status),
		AllowedPaymentSchemes: allowed,
	}, nil
}

func (s *BackupAccountStore) Create(ctx context.Context, account *domain.Account) error {
	data, err := encodeAccount(account)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	ok, err := s.client.SetNX(ctx, backupKey(account.AccountNumber), data, 0).Result()
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	if !ok {
		return fmt.Errorf("Create: %w", domain.ErrAccountExists)
	}
	return nil
}

// UpdateAccount overwrites the stored document for account.AccountNumber.
// The key must already exist.
func (s *BackupAccountStore) UpdateAccount(ctx context.Context, account *domain.Account) error {
	data, err := encodeAccount(account)
	if err != nil {
		return fmt.Errorf("UpdateAccount: %w", err)
	}

	ok, err := s.client.SetXX(ctx, backupKey(account.AccountNumber), data, redis.KeepTTL).Result()
	if err != nil {
		return fmt.Errorf("UpdateAccount: %w", err)
	}
	if !ok {
		return fmt.Errorf("UpdateAccount: %w", domain.ErrNotFound)
	}
	return nil
}

func (s *BackupAccountStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *BackupAccountStore) Close() error {
	return s.client.Close()
}

func encodeAccount(a *domain.Account) ([]byte, error) {
	data, err := json.Marshal(storedAccount{
		AccountNumber:  a.AccountNumber,
		Balance:        a.Balance,
		Status:         string(a.Status),
		AllowedSchemes: a.AllowedPaymentSchemes.Strings(),
	})
	if err != nil {
		return nil, fmt.Errorf("encodeAccount: %w", err)
	}
	return data, nil
}
