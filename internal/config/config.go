// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/joshlee247/woocommerce-discord-monitor/pkg/price"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// Storage backend names.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Storage       StorageConfig       `yaml:"storage"`
	Storefront    StorefrontConfig    `yaml:"storefront"`
	HTTP          HTTPConfig          `yaml:"http"`
	Engine        EngineConfig        `yaml:"engine"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Monitors      []MonitorConfig     `yaml:"monitors"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// StorageConfig selects and configures the variant/monitor store.
type StorageConfig struct {
	Backend  string         `yaml:"backend"` // postgres, sqlite, redis, memory
	Postgres DatabaseConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Redis    RedisConfig    `yaml:"redis"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// SQLiteConfig defines the on-disk SQLite database.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// RedisConfig defines Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// StorefrontConfig defines how storefront pages are fetched and how their
// products are presented in notifications.
type StorefrontConfig struct {
	UserAgent    string          `yaml:"user_agent"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
	IconURL      string          `yaml:"icon_url"`
	CheckoutURL  string          `yaml:"checkout_url"`
	ProductType  string          `yaml:"product_type"`
	Locale       string          `yaml:"locale"`
	LinkCurrency string          `yaml:"link_currency"`
}

// RateLimitConfig defines per-host request throttling.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// HTTPConfig defines outbound HTTP settings.
type HTTPConfig struct {
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

// EngineConfig defines polling behavior.
type EngineConfig struct {
	PollInterval         time.Duration `yaml:"poll_interval"`
	Concurrency          int           `yaml:"concurrency"`
	PruneMissingVariants *bool         `yaml:"prune_missing_variants"` // default: true
}

// Prune reports whether variants missing from a snapshot are deleted.
func (e *EngineConfig) Prune() bool {
	return e.PruneMissingVariants == nil || *e.PruneMissingVariants
}

// NotificationsConfig defines notification transports.
type NotificationsConfig struct {
	Timeout  time.Duration  `yaml:"timeout"`
	Discord  DiscordConfig  `yaml:"discord"`
	Telegram TelegramConfig `yaml:"telegram"`
	Email    EmailConfig    `yaml:"email"`
}

// DiscordConfig defines Discord settings. BotToken is required only for
// monitors whose channel is a channel id rather than a webhook URL.
type DiscordConfig struct {
	BotToken string `yaml:"bot_token"`
	BaseURL  string `yaml:"base_url"`
}

// TelegramConfig defines Telegram bot settings.
type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"`
	APIEndpoint string `yaml:"api_endpoint"`
}

// EmailConfig defines SMTP settings.
type EmailConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string        `yaml:"level"`  // debug, info, warn, error
	Format string        `yaml:"format"` // text, json
	File   LogFileConfig `yaml:"file"`
}

// LogFileConfig defines the optional rotating log file.
type LogFileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// TelemetryConfig defines OpenTelemetry trace and metric export.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// MonitorConfig is a monitor declared in the config file. Declared monitors
// are seeded into the store at startup.
type MonitorConfig struct {
	ID        string `yaml:"id"        validate:"required"`
	Name      string `yaml:"name"`
	URL       string `yaml:"url"       validate:"required,url"`
	Kind      string `yaml:"kind"      validate:"required,oneof=product collection search"`
	Query     string `yaml:"query"     validate:"required_if=Kind search"`
	Currency  string `yaml:"currency"  validate:"required,iso4217"`
	Channel   string `yaml:"channel"   validate:"required"`
	Transport string `yaml:"transport" validate:"required,oneof=discord telegram email"`
	Enabled   *bool  `yaml:"enabled"`
}

// ToDomain converts the declaration into a domain monitor.
func (m *MonitorConfig) ToDomain() domain.Monitor {
	return domain.Monitor{
		ID:        m.ID,
		Name:      m.Name,
		URL:       m.URL,
		Kind:      domain.MonitorKind(m.Kind),
		Query:     m.Query,
		Currency:  m.Currency,
		Channel:   m.Channel,
		Transport: domain.Transport(m.Transport),
		Enabled:   m.Enabled == nil || *m.Enabled,
	}
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config content, applying env substitution, defaults
// and validation.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyStorageDefaults(&cfg.Storage)
	applyStorefrontDefaults(&cfg.Storefront)
	applyHTTPDefaults(&cfg.HTTP)
	applyEngineDefaults(&cfg.Engine)
	applyNotificationsDefaults(&cfg.Notifications)
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)

	for i := range cfg.Monitors {
		applyMonitorDefaults(&cfg.Monitors[i])
	}
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyStorageDefaults(s *StorageConfig) {
	if s.Backend == "" {
		s.Backend = BackendSQLite
	}

	d := &s.Postgres
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}

	if s.SQLite.Path == "" {
		s.SQLite.Path = "wc-monitor.db"
	}

	if s.Redis.Addr == "" {
		s.Redis.Addr = "localhost:6379"
	}
	if s.Redis.Prefix == "" {
		s.Redis.Prefix = "wcm:"
	}
}

func applyStorefrontDefaults(s *StorefrontConfig) {
	if s.UserAgent == "" {
		s.UserAgent = "wc-monitor/1.0"
	}
	if s.RateLimit.PerSecond == 0 {
		s.RateLimit.PerSecond = 1.0
	}
	if s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = 2
	}
	if s.IconURL == "" {
		s.IconURL = "https://www.marukyu-koyamaen.co.jp/english/shop/wp-content/themes/motoan-shop-en/images/favicon.ico"
	}
	if s.CheckoutURL == "" {
		s.CheckoutURL = "https://www.marukyu-koyamaen.co.jp/english/shop/cart/checkout/"
	}
	if s.ProductType == "" {
		s.ProductType = "Matcha"
	}
	if s.Locale == "" {
		s.Locale = "en-US"
	}
	if s.LinkCurrency == "" {
		s.LinkCurrency = "USD"
	}
}

func applyHTTPDefaults(h *HTTPConfig) {
	if h.FetchTimeout == 0 {
		h.FetchTimeout = 30 * time.Second
	}
}

func applyEngineDefaults(e *EngineConfig) {
	if e.PollInterval == 0 {
		e.PollInterval = 5 * time.Minute
	}
	if e.Concurrency == 0 {
		e.Concurrency = 4
	}
}

func applyNotificationsDefaults(n *NotificationsConfig) {
	if n.Timeout == 0 {
		n.Timeout = 15 * time.Second
	}
	if n.Discord.BaseURL == "" {
		n.Discord.BaseURL = "https://discord.com/api/v10"
	}
	if n.Telegram.APIEndpoint == "" {
		n.Telegram.APIEndpoint = "https://api.telegram.org/bot%s/%s"
	}
	if n.Email.Port == 0 {
		n.Email.Port = 587
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
	if l.File.MaxSizeMB == 0 {
		l.File.MaxSizeMB = 10
	}
	if l.File.MaxBackups == 0 {
		l.File.MaxBackups = 3
	}
	if l.File.MaxAgeDays == 0 {
		l.File.MaxAgeDays = 28
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "wc-monitor"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func applyMonitorDefaults(m *MonitorConfig) {
	if m.Currency == "" {
		m.Currency = "USD"
	}
	m.Currency = strings.ToUpper(m.Currency)
	if m.Transport == "" {
		m.Transport = string(domain.TransportDiscord)
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Storage.Backend {
	case BackendPostgres:
		if cfg.Storage.Postgres.Host == "" {
			errs = append(errs, fmt.Errorf("storage.postgres.host is required when backend is postgres"))
		}
		if cfg.Storage.Postgres.Name == "" {
			errs = append(errs, fmt.Errorf("storage.postgres.name is required when backend is postgres"))
		}
		if cfg.Storage.Postgres.User == "" {
			errs = append(errs, fmt.Errorf("storage.postgres.user is required when backend is postgres"))
		}
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"storage.backend must be one of: postgres, sqlite, redis, memory (got %q)",
				cfg.Storage.Backend,
			),
		)
	}

	if cfg.Storefront.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("storefront.rate_limit.per_second must not be negative"))
	}
	if cfg.Engine.PollInterval < time.Second {
		errs = append(errs, fmt.Errorf("engine.poll_interval must be at least 1s"))
	}
	if cfg.Engine.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("engine.concurrency must be positive"))
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		errs = append(errs, fmt.Errorf("telemetry.endpoint is required when telemetry is enabled"))
	}

	errs = append(errs, validateMonitors(cfg)...)

	return errors.Join(errs...)
}

func validateMonitors(cfg *Config) []error {
	var errs []error

	v := validator.New(validator.WithRequiredStructEnabled())
	seen := make(map[string]bool, len(cfg.Monitors))

	for i := range cfg.Monitors {
		m := &cfg.Monitors[i]
		prefix := fmt.Sprintf("monitors[%d]", i)

		merrs := checkMonitor(v, prefix, m)
		if len(merrs) > 0 {
			errs = append(errs, merrs...)
			continue
		}

		if seen[m.ID] {
			errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, m.ID))
		}
		seen[m.ID] = true

		errs = append(errs, validateTransport(cfg, prefix, m)...)
	}

	return errs
}

// ValidateMonitor applies monitor defaults to m and checks it the way
// monitors declared in the config file are checked. The id is optional and
// transport credentials are not checked.
func ValidateMonitor(m *MonitorConfig) error {
	applyMonitorDefaults(m)

	generated := m.ID == ""
	if generated {
		m.ID = "pending"
	}
	errs := checkMonitor(validator.New(validator.WithRequiredStructEnabled()), "monitor", m)
	if generated {
		m.ID = ""
	}

	return errors.Join(errs...)
}

func checkMonitor(v *validator.Validate, prefix string, m *MonitorConfig) []error {
	var errs []error

	if err := v.Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fmt.Errorf("%s.%s failed %q validation", prefix, strings.ToLower(fe.Field()), fe.Tag()))
			}
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
		return errs
	}

	if err := price.ValidateCurrency(m.Currency); err != nil {
		errs = append(errs, fmt.Errorf("%s.currency: %w", prefix, err))
	}

	return errs
}

func validateTransport(cfg *Config, prefix string, m *MonitorConfig) []error {
	var errs []error

	switch domain.Transport(m.Transport) {
	case domain.TransportDiscord:
		isWebhook := strings.HasPrefix(m.Channel, "http://") || strings.HasPrefix(m.Channel, "https://")
		if !isWebhook && cfg.Notifications.Discord.BotToken == "" {
			errs = append(errs, fmt.Errorf(
				"%s: notifications.discord.bot_token is required for channel id destinations", prefix,
			))
		}
	case domain.TransportTelegram:
		if cfg.Notifications.Telegram.BotToken == "" {
			errs = append(errs, fmt.Errorf(
				"%s: notifications.telegram.bot_token is required for telegram monitors", prefix,
			))
		}
	case domain.TransportEmail:
		if cfg.Notifications.Email.Host == "" || cfg.Notifications.Email.From == "" {
			errs = append(errs, fmt.Errorf(
				"%s: notifications.email.host and notifications.email.from are required for email monitors", prefix,
			))
		}
	}

	return errs
}
