// Package config loads process configuration from .env, the environment and
// an optional YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Port        string `yaml:"port" env:"PORT" env-default:"8080"`
	Env         string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	LogMode     string `yaml:"log_mode" env:"LOG_MODE" env-default:"development"`
	StoreDriver string `yaml:"store_driver" env:"STORE_DRIVER" env-default:"postgres"`

	Database DatabaseConfig `yaml:"database"`
	Queue    QueueConfig    `yaml:"queue"`
	Redis    RedisConfig    `yaml:"redis"`
	Client   ClientConfig   `yaml:"client"`
}

// DatabaseConfig keeps the DB_* variable names of the original service.
type DatabaseConfig struct {
	Host         string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port         int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User         string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password     string `yaml:"-" env:"DB_PASSWORD"`
	Name         string `yaml:"name" env:"DB_NAME" env-default:"influencer_admin"`
	SSLMode      string `yaml:"ssl_mode" env:"DB_SSLMODE" env-default:"disable"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
}

// DSN renders a lib/pq connection URL.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

type QueueConfig struct {
	// AMQPURL selects RabbitMQ; empty keeps change events in process.
	AMQPURL string `yaml:"amqp_url" env:"AMQP_URL" env-default:""`
	Name    string `yaml:"name" env:"AMQP_QUEUE" env-default:"record_changes"`
}

type RedisConfig struct {
	// Addr enables the snapshot response cache when set.
	Addr string        `yaml:"addr" env:"REDIS_ADDR" env-default:""`
	TTL  time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"30s"`
}

type ClientConfig struct {
	APIBaseURL string        `yaml:"api_base_url" env:"API_BASE_URL" env-default:"http://localhost:8080"`
	Timeout    time.Duration `yaml:"timeout" env:"CLIENT_TIMEOUT" env-default:"10s"`
}

// Load reads .env if present, then the environment, or CONFIG_FILE when set.
// Environment variables override YAML values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDriverPostgres, StoreDriverMemory, c.StoreDriver)
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("CLIENT_TIMEOUT must be positive")
	}
	return nil
}
