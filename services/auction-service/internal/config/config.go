// Package config loads the auction-service settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	HTTPAddr      string `env:"HTTP_ADDR" envDefault:":8080" validate:"required"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres" validate:"oneof=postgres memory"`

	DatabaseURL   string        `env:"AUCTION_DB_URL" validate:"required_if=StorageDriver postgres"`
	RunMigrations bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
	LockTimeout   time.Duration `env:"DB_LOCK_TIMEOUT" envDefault:"3s" validate:"gt=0"`

	RabbitMQURL    string `env:"RABBITMQ_URL"`
	EventsExchange string `env:"EVENTS_EXCHANGE" envDefault:"auction.events" validate:"required"`

	RedisURL       string        `env:"REDIS_URL"`
	PublicCacheTTL time.Duration `env:"PUBLIC_CACHE_TTL" envDefault:"2s" validate:"gt=0"`

	JWTSecret   string `env:"AUTH_JWT_SECRET" validate:"required,min=32"`
	JWTAudience string `env:"AUTH_JWT_AUDIENCE" envDefault:"authenticated"`
	JWTIssuer   string `env:"AUTH_JWT_ISSUER"`

	OutboxBatchSize     int           `env:"OUTBOX_BATCH_SIZE" envDefault:"10" validate:"min=1"`
	OutboxInterval      time.Duration `env:"OUTBOX_INTERVAL" envDefault:"1s" validate:"gt=0"`
	ExpirySweepInterval time.Duration `env:"EXPIRY_SWEEP_INTERVAL" envDefault:"15s" validate:"gt=0"`
	ExpirySweepBatch    int           `env:"EXPIRY_SWEEP_BATCH" envDefault:"100" validate:"min=1"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load reads .env.local and .env when present (local values win), then
// parses and validates the environment
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
