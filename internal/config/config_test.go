package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1230harry/commercial-db-api/internal/repository/sqlstore"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, sqlstore.Postgres, cfg.Dialect)
	assert.Equal(t, 10, cfg.MaxConns)
	assert.Equal(t, "commerce.changes", cfg.KafkaTopic)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/commerce?sslmode=disable", cfg.DSN())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_HOST", "mysql.internal")
	t.Setenv("DB_USER", "api")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_DATABASE", "shop")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, sqlstore.MySQL, cfg.Dialect)
	assert.Equal(t, 25, cfg.MaxConns)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Contains(t, cfg.DSN(), "api:pw@tcp(mysql.internal:3306)/shop")
}

func TestLoad_DatabaseURLOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/x")
	t.Setenv("DB_HOST", "ignored")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db/x", cfg.DSN())
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]map[string]string{
		"missing secret":   {},
		"unknown driver":   {"JWT_SECRET": "s", "DB_DRIVER": "oracle"},
		"bad pool size":    {"JWT_SECRET": "s", "DB_MAX_OPEN_CONNS": "many"},
		"zero pool size":   {"JWT_SECRET": "s", "DB_MAX_OPEN_CONNS": "0"},
		"unknown loglevel": {"JWT_SECRET": "s", "LOG_LEVEL": "chatty"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
