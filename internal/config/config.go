package config

import (
	"fmt"
	"strings"

	env "github.com/caarlos0/env/v11"
)

const (
	DataStorePrimary = "primary"
	DataStoreBackup  = "backup"
)

type Config struct {
	// DataStoreType selects the account store. "backup" in any case uses
	// Redis; any other value uses Postgres.
	DataStoreType string `env:"DATA_STORE_TYPE" envDefault:"primary"`

	DatabaseURL   string `env:"DATABASE_URL"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
	Port      int    `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv    string `env:"APP_ENV" envDefault:"production"`

	DBMaxOpenConns     int `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns     int `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetimeS int `env:"DB_CONN_MAX_LIFETIME_S" envDefault:"300"`
	DBConnMaxIdleTimeS int `env:"DB_CONN_MAX_IDLE_TIME_S" envDefault:"60"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func (c Config) UseBackupStore() bool {
	return strings.EqualFold(c.DataStoreType, DataStoreBackup)
}

func (c Config) validate() error {
	if !c.UseBackupStore() && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for the %s data store", DataStorePrimary)
	}
	return nil
}
