package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDatabaseConfig(t *testing.T) {
	base := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "library",
		Password: "secret",
		Database: "local_library",
		SSLMode:  "require",
		MaxConns: 10,
		MinConns: 2,
	}

	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"DB_MAX_RETRIES", "DB_MAX_CONN_LIFETIME", "DB_RETRY_DELAY", "DB_CONNECT_TIMEOUT"} {
			t.Setenv(key, "")
		}

		cfg, err := LoadDatabaseConfig(base)
		require.NoError(t, err)
		assert.Equal(t, "db", cfg.Host)
		assert.Equal(t, "library", cfg.Username)
		assert.Equal(t, "local_library", cfg.DBName)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.EqualValues(t, 10, cfg.MaxConns)
		assert.Equal(t, 5, cfg.MaxRetries)
		assert.Equal(t, 5*time.Minute, cfg.MaxConnLifetime)
		assert.Equal(t, time.Second, cfg.RetryDelay)
	})

	t.Run("retries are at least one", func(t *testing.T) {
		t.Setenv("DB_MAX_RETRIES", "0")

		cfg, err := LoadDatabaseConfig(base)
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.MaxRetries)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("DB_RETRY_DELAY", "soon")

		_, err := LoadDatabaseConfig(base)
		assert.ErrorContains(t, err, "DB_RETRY_DELAY")
	})
}
