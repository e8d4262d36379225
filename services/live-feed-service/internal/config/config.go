// Package config loads the live-feed-service settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081" validate:"required"`

	RabbitMQURL    string `env:"RABBITMQ_URL" validate:"required"`
	EventsExchange string `env:"EVENTS_EXCHANGE" envDefault:"auction.events" validate:"required"`
	FeedQueue      string `env:"FEED_QUEUE" envDefault:"live_feed_events" validate:"required"`

	RedisURL string `env:"REDIS_URL" validate:"required"`

	// AllowedOrigins limits websocket upgrades by Origin header. Empty allows any.
	AllowedOrigins []string `env:"WS_ALLOWED_ORIGINS" envSeparator:","`

	LogFormat string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load reads .env.local and .env when present, then parses and validates the environment
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
