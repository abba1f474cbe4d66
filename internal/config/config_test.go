package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultItemsPath, cfg.ItemsPath)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
		assert.Equal(t, DefaultTooltipCacheSize, cfg.TooltipCacheSize)
		assert.Equal(t, time.Duration(DefaultTooltipCacheTTLSeconds)*time.Second, cfg.TooltipCacheTTL)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv(EnvKeyItemsPath, "packs/custom.yaml")
		t.Setenv(EnvKeyLogLevel, "debug")
		t.Setenv(EnvKeyTooltipCacheSize, "64")
		t.Setenv(EnvKeyTooltipCacheTTL, "30")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "packs/custom.yaml", cfg.ItemsPath)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 64, cfg.TooltipCacheSize)
		assert.Equal(t, 30*time.Second, cfg.TooltipCacheTTL)
	})

	t.Run("invalid cache size", func(t *testing.T) {
		t.Setenv(EnvKeyTooltipCacheSize, "not-a-number")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive cache size", func(t *testing.T) {
		t.Setenv(EnvKeyTooltipCacheSize, "0")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv(EnvKeyTooltipCacheTTL, "soon")

		_, err := Load()
		assert.Error(t, err)
	})
}
