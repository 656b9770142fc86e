package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		JWT: JWTConfig{
			AccessSecret:     "access-secret",
			RefreshSecret:    "refresh-secret",
			AccessExpiresIn:  time.Hour,
			RefreshExpiresIn: 7 * 24 * time.Hour,
		},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validTestConfig().Validate())
}

func TestValidateEmptySecrets(t *testing.T) {
	cfg := validTestConfig()
	cfg.JWT.AccessSecret = ""
	assert.Error(t, cfg.Validate())

	cfg = validTestConfig()
	cfg.JWT.RefreshSecret = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateSecretsMustDiffer(t *testing.T) {
	cfg := validTestConfig()
	cfg.JWT.RefreshSecret = cfg.JWT.AccessSecret
	assert.Error(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.NotNil(t, cfg)
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiresIn)
	assert.NotEmpty(t, cfg.Database.DSN)
	assert.NotEmpty(t, cfg.Redis.Addr)
}
