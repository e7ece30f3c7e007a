package config

import (
	"errors"
	"fmt"
)

// Validate checks the settings the process cannot start without
func (c *Config) Validate() error {
	var problems []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Errorf("invalid server port: %d", c.Server.Port))
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.Database == "" {
			problems = append(problems, errors.New("database host and name are required for the postgres driver"))
		}
	case "memory":
	default:
		problems = append(problems, fmt.Errorf("unsupported database driver: %s", c.Database.Driver))
	}

	if c.Auth.JWTSecret == "" {
		problems = append(problems, errors.New("auth.jwtSecret is required"))
	}

	switch c.Payment.LatePaymentPolicy {
	case "reject", "honor":
	default:
		problems = append(problems, fmt.Errorf("payment.latePaymentPolicy must be reject or honor, got %q", c.Payment.LatePaymentPolicy))
	}

	if !c.providerEnabled(c.Payment.DefaultProvider) {
		problems = append(problems, fmt.Errorf("default provider %q is not enabled", c.Payment.DefaultProvider))
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		problems = append(problems, errors.New("kafka.brokers is required when kafka is enabled"))
	}

	for action, cost := range c.Credits.Costs {
		if cost <= 0 {
			problems = append(problems, fmt.Errorf("credits.costs.%s must be positive", action))
		}
	}

	return errors.Join(problems...)
}

func (c *Config) providerEnabled(name string) bool {
	switch name {
	case "qrispolling":
		return c.Providers.QrisPolling.Enabled
	case "xendit":
		return c.Providers.Xendit.Enabled
	case "trakteer":
		return c.Providers.Trakteer.Enabled
	case "cashi":
		return c.Providers.Cashi.Enabled
	default:
		return false
	}
}
