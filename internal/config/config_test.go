package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TOKEN_SIGNING_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dev", cfg.Server.Env)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "HS256", cfg.Auth.SigningAlgorithm)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address())
}

func TestLoad_SecretValidation(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("TOKEN_SIGNING_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("short secret", func(t *testing.T) {
		t.Setenv("TOKEN_SIGNING_SECRET", "too-short")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TOKEN_SIGNING_SECRET", testSecret)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("ACCESS_TOKEN_DURATION", "900")
	t.Setenv("TRUSTED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.TrustedOrigins)
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "secret",
		DBName:   "reviews",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=reviews sslmode=disable",
		cfg.ConnectionString(),
	)
}
