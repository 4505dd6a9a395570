package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/1230harry/commercial-db-api/internal/repository/sqlstore"
)

// Config holds every environment-sourced setting of the API process.
type Config struct {
	Port string

	Dialect     sqlstore.Dialect
	DatabaseURL string
	DB          sqlstore.ConnParams
	MaxConns    int

	JWTSecret string

	KafkaBrokers []string
	KafkaTopic   string

	LogLevel slog.Level
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DB: sqlstore.ConnParams{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Database: getEnv("DB_DATABASE", "commerce"),
		},
		JWTSecret:  os.Getenv("JWT_SECRET"),
		KafkaTopic: getEnv("KAFKA_TOPIC", "commerce.changes"),
	}

	dialect, err := sqlstore.DialectFor(getEnv("DB_DRIVER", "postgres"))
	if err != nil {
		return Config{}, err
	}
	cfg.Dialect = dialect

	cfg.MaxConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "10"))
	if err != nil || cfg.MaxConns < 1 {
		return Config{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS %q", os.Getenv("DB_MAX_OPEN_CONNS"))
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET must be set")
	}

	cfg.KafkaBrokers = lo.Compact(lo.Map(strings.Split(os.Getenv("KAFKA_BROKERS"), ","), func(b string, _ int) string {
		return strings.TrimSpace(b)
	}))

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a DSN assembled from the DB_* settings.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.Dialect.DSN(c.DB)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
