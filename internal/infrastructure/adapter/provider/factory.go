package provider

import (
	"fmt"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/payment"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

// BuildRegistry instantiates every enabled provider and picks the configured default
func BuildRegistry(cfg *config.Config, logger coreport.Logger) (*Registry, error) {
	client := NewHTTPClient(cfg.Payment.ProviderTimeout)
	var providers []payment.Provider

	if cfg.Providers.QrisPolling.Enabled {
		providers = append(providers, NewQrisPolling(cfg.Providers.QrisPolling, client, logger.With(map[string]any{"provider": QrisPollingName})))
	}
	if cfg.Providers.Xendit.Enabled {
		providers = append(providers, NewXendit(cfg.Providers.Xendit, client, logger.With(map[string]any{"provider": XenditName})))
	}
	if cfg.Providers.Trakteer.Enabled {
		trakteer, err := NewTrakteer(cfg.Providers.Trakteer, cfg.Payment.ProviderTimeout, logger.With(map[string]any{"provider": TrakteerName}))
		if err != nil {
			return nil, fmt.Errorf("trakteer: %w", err)
		}
		providers = append(providers, trakteer)
	}
	if cfg.Providers.Cashi.Enabled {
		providers = append(providers, NewCashi(cfg.Providers.Cashi, client, logger.With(map[string]any{"provider": CashiName})))
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no payment provider enabled")
	}

	registry, err := NewRegistry(cfg.Payment.DefaultProvider, providers...)
	if err != nil {
		return nil, err
	}

	logger.Info("Payment providers registered", map[string]any{
		"providers": registry.Names(),
		"default":   cfg.Payment.DefaultProvider,
	})
	return registry, nil
}
