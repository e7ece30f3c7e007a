package provider

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

func TestRegistry(t *testing.T) {
	qris := NewQrisPolling(config.QrisPollingConfig{}, http.DefaultClient, logger.NewNoopLogger())
	xendit := NewXendit(config.XenditConfig{}, http.DefaultClient, logger.NewNoopLogger())

	t.Run("should resolve providers by name", func(t *testing.T) {
		registry, err := NewRegistry(XenditName, qris, xendit)
		require.NoError(t, err)

		got, err := registry.Get(QrisPollingName)
		require.NoError(t, err)
		assert.Equal(t, QrisPollingName, got.Name())
		assert.Equal(t, XenditName, registry.Default().Name())
		assert.Equal(t, []string{QrisPollingName, XenditName}, registry.Names())
	})

	t.Run("should report unknown providers", func(t *testing.T) {
		registry, err := NewRegistry(QrisPollingName, qris)
		require.NoError(t, err)

		_, err = registry.Get("midtrans")
		assert.ErrorIs(t, err, errs.ErrUnknownProvider)
	})

	t.Run("should refuse a missing default", func(t *testing.T) {
		_, err := NewRegistry(TrakteerName, qris)
		assert.ErrorIs(t, err, errs.ErrUnknownProvider)
	})

	t.Run("should refuse duplicate names", func(t *testing.T) {
		_, err := NewRegistry(QrisPollingName, qris, qris)
		assert.Error(t, err)
	})
}

func TestBuildRegistry(t *testing.T) {
	t.Run("should register only enabled providers", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Payment.DefaultProvider = TrakteerName
		cfg.Providers.Trakteer = config.TrakteerConfig{Enabled: true, UnitPrice: 1000}
		cfg.Providers.Xendit = config.XenditConfig{Enabled: true}

		registry, err := BuildRegistry(cfg, logger.NewNoopLogger())

		require.NoError(t, err)
		assert.Equal(t, []string{TrakteerName, XenditName}, registry.Names())
	})

	t.Run("should register cashi", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Payment.DefaultProvider = CashiName
		cfg.Providers.Cashi = config.CashiConfig{Enabled: true, BaseURL: "https://cashi.test/api"}

		registry, err := BuildRegistry(cfg, logger.NewNoopLogger())

		require.NoError(t, err)
		got, err := registry.Get(CashiName)
		require.NoError(t, err)
		assert.Equal(t, CashiName, got.Name())
		assert.Equal(t, CashiName, registry.Default().Name())
	})

	t.Run("should fail when nothing is enabled", func(t *testing.T) {
		_, err := BuildRegistry(&config.Config{}, logger.NewNoopLogger())
		assert.Error(t, err)
	})
}
