//go:build unit

package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSeedEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "dashboard")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "dashboard")
	t.Setenv("SEED_EMAIL", "user@nextmail.com")
	t.Setenv("SEED_PASSWORD", "123456")
}

func TestLoadSeedConfig(t *testing.T) {
	t.Run("reads seed user and store settings", func(t *testing.T) {
		setSeedEnv(t)

		cfg, err := loadSeedConfig()
		require.NoError(t, err)

		assert.Equal(t, "User", cfg.Name)
		assert.Equal(t, "user@nextmail.com", cfg.Email)
		assert.Equal(t, "123456", cfg.Password)
		assert.Equal(t, "dashboard", cfg.DB.User)
		assert.Equal(t, 10, cfg.Auth.BcryptCost)
	})

	t.Run("missing seed email is wrapped with a stack", func(t *testing.T) {
		setSeedEnv(t)
		require.NoError(t, os.Unsetenv("SEED_EMAIL"))

		_, err := loadSeedConfig()
		require.Error(t, err)

		assert.Contains(t, err.Error(), "failed to process env config")
		assert.Contains(t, err.Error(), "SEED_EMAIL")
		assert.Contains(t, fmt.Sprintf("%+v", err), "loadSeedConfig")
	})
}
