package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.NotEmpty(t, cfg.DBHost)
	assert.NotEmpty(t, cfg.MediaDir)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	base := Config{
		Port:          "8000",
		SessionSecret: "dev-secret-change-in-production",
		DBPassword:    "password",
		DBSSLMode:     "disable",
		Env:           "development",
	}

	t.Run("development accepts defaults", func(t *testing.T) {
		t.Parallel()
		cfg := base
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing port rejected", func(t *testing.T) {
		t.Parallel()
		cfg := base
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing secret rejected", func(t *testing.T) {
		t.Parallel()
		cfg := base
		cfg.SessionSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		t.Parallel()
		cfg := base
		cfg.Env = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects short secret", func(t *testing.T) {
		t.Parallel()
		cfg := base
		cfg.Env = "production"
		cfg.SessionSecret = "short"
		cfg.DBPassword = "4-very-strong-password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default db password", func(t *testing.T) {
		t.Parallel()
		cfg := base
		cfg.Env = "production"
		cfg.SessionSecret = "0123456789abcdef0123456789abcdef"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production accepts hardened values", func(t *testing.T) {
		t.Parallel()
		cfg := base
		cfg.Env = "production"
		cfg.SessionSecret = "0123456789abcdef0123456789abcdef"
		cfg.DBPassword = "4-very-strong-password"
		cfg.DBSSLMode = "require"
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_IsProduction(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: "test"}).IsProduction())
}
