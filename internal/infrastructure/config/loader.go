package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "CL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// envOverrides maps environment variables to config keys. Secrets are expected to come from here.
var envOverrides = map[string]string{
	"CL_SERVER_HOST":                 "server.host",
	"CL_SERVER_PORT":                 "server.port",
	"CL_DB_DRIVER":                   "database.driver",
	"CL_DB_HOST":                     "database.host",
	"CL_DB_PORT":                     "database.port",
	"CL_DB_USERNAME":                 "database.username",
	"CL_DB_PASSWORD":                 "database.password",
	"CL_DB_NAME":                     "database.database",
	"CL_DB_SSL_MODE":                 "database.sslMode",
	"CL_LOGGER_LEVEL":                "logger.level",
	"CL_LOGGER_FORMAT":               "logger.format",
	"CL_AUTH_JWT_SECRET":             "auth.jwtSecret",
	"CL_REDIS_ADDR":                  "redis.addr",
	"CL_REDIS_PASSWORD":              "redis.password",
	"CL_PAYMENT_DEFAULT_PROVIDER":    "payment.defaultProvider",
	"CL_PAYMENT_LATE_POLICY":         "payment.latePaymentPolicy",
	"CL_QRISPOLLING_BASE_URL":        "providers.qrispolling.baseUrl",
	"CL_QRISPOLLING_API_KEY":         "providers.qrispolling.apiKey",
	"CL_QRISPOLLING_INSTANCE_ID":     "providers.qrispolling.instanceId",
	"CL_QRISPOLLING_WEBHOOK_TOKEN":   "providers.qrispolling.webhookToken",
	"CL_XENDIT_SECRET_KEY":           "providers.xendit.secretKey",
	"CL_XENDIT_CALLBACK_TOKEN":       "providers.xendit.callbackToken",
	"CL_TRAKTEER_CREATOR_SLUG":       "providers.trakteer.creatorSlug",
	"CL_TRAKTEER_CREATOR_ID":         "providers.trakteer.creatorId",
	"CL_TRAKTEER_UNIT_ID":            "providers.trakteer.unitId",
	"CL_TRAKTEER_WEBHOOK_TOKEN":      "providers.trakteer.webhookToken",
	"CL_CASHI_API_KEY":               "providers.cashi.apiKey",
	"CL_CASHI_WEBHOOK_TOKEN":         "providers.cashi.webhookToken",
	"CL_DB_MAX_OPEN_CONNS":           "database.maxOpenConns",
	"CL_DB_MAX_IDLE_CONNS":           "database.maxIdleConns",
	"CL_DB_QUERY_TIMEOUT_SECONDS":    "database.queryTimeout",
	"CL_PAYMENT_PROVIDER_TIMEOUT_S":  "payment.providerTimeout",
	"CL_NOTIFIER_TIMEOUT_MS":         "notifier.timeout",
	"CL_PAYMENT_MIN_CONTAINS_LENGTH": "payment.minContainsMatchLength",
}

// boolOverrides toggles optional integrations from the environment
var boolOverrides = map[string]string{
	"CL_REDIS_ENABLED":       "redis.enabled",
	"CL_KAFKA_ENABLED":       "kafka.enabled",
	"CL_QRISPOLLING_ENABLED": "providers.qrispolling.enabled",
	"CL_XENDIT_ENABLED":      "providers.xendit.enabled",
	"CL_TRAKTEER_ENABLED":    "providers.trakteer.enabled",
	"CL_CASHI_ENABLED":       "providers.cashi.enabled",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}
	return loadConfig(getEnvironment(), ConfigPaths)
}

func loadConfig(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 0)       // seconds, SSE streams stay open
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.txMaxRetries", 5)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.issuer", "credit-ledger")
	v.SetDefault("auth.tokenTTL", 60) // minutes

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("kafka.topic", "payment.success")
	v.SetDefault("kafka.clientId", "credit-ledger")
	v.SetDefault("notifier.timeout", 3000) // milliseconds

	v.SetDefault("payment.defaultProvider", "qrispolling")
	v.SetDefault("payment.externalIdPrefix", "TOPUP")
	v.SetDefault("payment.providerTimeout", 15) // seconds
	v.SetDefault("payment.latePaymentPolicy", "reject")
	v.SetDefault("payment.minContainsMatchLength", 12)
	v.SetDefault("payment.historyLimit", 10)

	v.SetDefault("providers.xendit.baseUrl", "https://api.xendit.co")
	v.SetDefault("providers.xendit.invoiceDuration", 900) // seconds
	v.SetDefault("providers.trakteer.baseUrl", "https://trakteer.id")
	v.SetDefault("providers.trakteer.unitPrice", 1000)
	v.SetDefault("providers.cashi.baseUrl", "https://cashi.id/api")

	v.SetDefault("credits.costs", map[string]int64{"diagnosis": 1, "chat": 1})
	v.SetDefault("credits.historyLimit", 20)
}

// getEnvironment determines the environment to use based on CL_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("CL_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	for envKey, configKey := range envOverrides {
		if value := os.Getenv(envKey); value != "" {
			v.Set(configKey, value)
		}
	}

	for envKey, configKey := range boolOverrides {
		if value, err := strconv.ParseBool(os.Getenv(envKey)); err == nil {
			v.Set(configKey, value)
		}
	}

	if brokers := os.Getenv("CL_KAFKA_BROKERS"); brokers != "" {
		v.Set("kafka.brokers", strings.Split(brokers, ","))
	}
	if retries := getEnvInt("CL_DB_TX_MAX_RETRIES", -1); retries >= 0 {
		v.Set("database.txMaxRetries", retries)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute
	config.Notifier.Timeout = time.Duration(config.Notifier.Timeout) * time.Millisecond
	config.Payment.ProviderTimeout = time.Duration(config.Payment.ProviderTimeout) * time.Second
	config.Providers.Xendit.InvoiceDuration = time.Duration(config.Providers.Xendit.InvoiceDuration) * time.Second
}
