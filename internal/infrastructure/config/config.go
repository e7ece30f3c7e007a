package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Kafka       KafkaConfig     `mapstructure:"kafka"`
	Notifier    NotifierConfig  `mapstructure:"notifier"`
	Payment     PaymentConfig   `mapstructure:"payment"`
	Providers   ProvidersConfig `mapstructure:"providers"`
	Credits     CreditsConfig   `mapstructure:"credits"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or memory
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	TxMaxRetries    int           `mapstructure:"txMaxRetries"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig contains bearer token settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwtSecret"`
	Issuer    string        `mapstructure:"issuer"`
	TokenTTL  time.Duration `mapstructure:"tokenTTL"` // minutes
}

// RedisConfig contains the real-time channel backend settings
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// KafkaConfig contains the payment.success fan-out settings
type KafkaConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Brokers  []string `mapstructure:"brokers"`
	Topic    string   `mapstructure:"topic"`
	ClientID string   `mapstructure:"clientId"`
}

// NotifierConfig contains push notification settings
type NotifierConfig struct {
	Timeout time.Duration `mapstructure:"timeout"` // milliseconds
}

// PaymentConfig contains settings shared by every provider
type PaymentConfig struct {
	DefaultProvider        string        `mapstructure:"defaultProvider"`
	ExternalIDPrefix       string        `mapstructure:"externalIdPrefix"`
	ProviderTimeout        time.Duration `mapstructure:"providerTimeout"` // seconds
	LatePaymentPolicy      string        `mapstructure:"latePaymentPolicy"`
	MinContainsMatchLength int           `mapstructure:"minContainsMatchLength"`
	HistoryLimit           int           `mapstructure:"historyLimit"`
}

// ProvidersConfig contains one block per provider adapter
type ProvidersConfig struct {
	QrisPolling QrisPollingConfig `mapstructure:"qrispolling"`
	Xendit      XenditConfig      `mapstructure:"xendit"`
	Trakteer    TrakteerConfig    `mapstructure:"trakteer"`
	Cashi       CashiConfig       `mapstructure:"cashi"`
}

// QrisPollingConfig configures the QRIS polling service
type QrisPollingConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	BaseURL      string `mapstructure:"baseUrl"`
	APIKey       string `mapstructure:"apiKey"`
	InstanceID   string `mapstructure:"instanceId"`
	WebhookToken string `mapstructure:"webhookToken"`
}

// XenditConfig configures the invoice gateway
type XenditConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	BaseURL            string        `mapstructure:"baseUrl"`
	SecretKey          string        `mapstructure:"secretKey"`
	CallbackToken      string        `mapstructure:"callbackToken"`
	InvoiceDuration    time.Duration `mapstructure:"invoiceDuration"` // seconds
	SuccessRedirectURL string        `mapstructure:"successRedirectUrl"`
}

// TrakteerConfig configures the scraped-session QRIS aggregator
type TrakteerConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	BaseURL      string `mapstructure:"baseUrl"`
	CreatorSlug  string `mapstructure:"creatorSlug"`
	CreatorID    string `mapstructure:"creatorId"`
	UnitID       string `mapstructure:"unitId"`
	UnitPrice    int64  `mapstructure:"unitPrice"`
	WebhookToken string `mapstructure:"webhookToken"`
}

// CashiConfig configures the QRIS order aggregator
type CashiConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	BaseURL      string `mapstructure:"baseUrl"`
	APIKey       string `mapstructure:"apiKey"`
	WebhookToken string `mapstructure:"webhookToken"`
}

// CreditsConfig contains the usage side of the ledger
type CreditsConfig struct {
	Costs        map[string]int64 `mapstructure:"costs"`
	HistoryLimit int              `mapstructure:"historyLimit"`
	Packages     []PackageConfig  `mapstructure:"packages"`
}

// PackageConfig is one catalog entry seeded at startup
type PackageConfig struct {
	ID        string `mapstructure:"id"`
	Name      string `mapstructure:"name"`
	Credits   int64  `mapstructure:"credits"`
	Price     int64  `mapstructure:"price"`
	Active    bool   `mapstructure:"active"`
	SortOrder int    `mapstructure:"sortOrder"`
}
