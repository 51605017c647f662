package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "inventory.db", cfg.DBPath)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 5, cfg.TopStockLimit)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VYAPAR_DB_PATH", "/tmp/shop.db")
	t.Setenv("APP_ENV", "production")
	t.Setenv("VYAPAR_TOP_STOCK_LIMIT", "12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/shop.db", cfg.DBPath)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 12, cfg.TopStockLimit)
}
