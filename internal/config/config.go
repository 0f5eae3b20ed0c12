// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Database drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

const minJWTSecretLen = 16

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Vault         VaultConfig         `yaml:"vault"`
	Orders        OrdersConfig        `yaml:"orders"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig selects the store backend and its PostgreSQL connection
// settings.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // memory, postgres
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

// AuthConfig defines how API callers are authenticated.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"`
	Issuer     string        `yaml:"issuer"`
	TokenTTL   time.Duration `yaml:"token_ttl"`
	AdminToken string        `yaml:"admin_token"` // empty disables admin access
}

// VaultConfig holds the key used to seal seller credentials.
type VaultConfig struct {
	MasterKey string `yaml:"master_key"` // 32 bytes, hex encoded
}

// OrdersConfig defines order lifecycle policy.
type OrdersConfig struct {
	DisputeWindow    time.Duration `yaml:"dispute_window"`
	CounterWindow    time.Duration `yaml:"counter_window"`
	AutoConfirmLimit int64         `yaml:"auto_confirm_limit"` // minor units, 0 disables
	DevConfirm       bool          `yaml:"dev_confirm"`
}

// ScheduleConfig defines the window sweep cadence.
type ScheduleConfig struct {
	SweepInterval time.Duration `yaml:"sweep_interval"`
	SweepBatch    int           `yaml:"sweep_batch"`
}

// RateLimitConfig defines per-client API rate limiting.
type RateLimitConfig struct {
	Enabled   bool    `yaml:"enabled"`
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TelemetryConfig defines OpenTelemetry export settings.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"` // host:port of the OTLP gRPC collector
	ServiceName    string        `yaml:"service_name"`
	Insecure       bool          `yaml:"insecure"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, console
	File   string `yaml:"file"`   // optional rotated log file
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. A .env file next to the config file, if
// present, is loaded into the environment first without overriding
// variables that are already set.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	envFile := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	// Expand environment variables in the YAML content.
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
	applyDatabaseDefaults(&cfg.Database)
	applyAuthDefaults(&cfg.Auth)
	applyOrdersDefaults(&cfg.Orders)
	applyScheduleDefaults(&cfg.Schedule)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
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

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = DriverMemory
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyAuthDefaults(a *AuthConfig) {
	if a.Issuer == "" {
		a.Issuer = "udam"
	}
	if a.TokenTTL == 0 {
		a.TokenTTL = 24 * time.Hour
	}
}

func applyOrdersDefaults(o *OrdersConfig) {
	if o.DisputeWindow == 0 {
		o.DisputeWindow = 72 * time.Hour
	}
	if o.CounterWindow == 0 {
		o.CounterWindow = 48 * time.Hour
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.SweepInterval == 0 {
		s.SweepInterval = 5 * time.Minute
	}
	if s.SweepBatch == 0 {
		s.SweepBatch = 100
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 10
	}
	if r.Burst == 0 {
		r.Burst = 20
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "udam"
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Database.Driver {
	case DriverMemory:
	case DriverPostgres:
		if cfg.Database.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required"))
		}
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"database.driver must be one of: memory, postgres (got %q)",
			cfg.Database.Driver,
		))
	}

	if len(cfg.Auth.JWTSecret) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf(
			"auth.jwt_secret must be at least %d characters", minJWTSecretLen,
		))
	}

	if cfg.Vault.MasterKey != "" {
		key, err := hex.DecodeString(cfg.Vault.MasterKey)
		if err != nil || len(key) != 32 {
			errs = append(errs, fmt.Errorf("vault.master_key must be 64 hex characters"))
		}
	}

	if cfg.Orders.DisputeWindow < 0 {
		errs = append(errs, fmt.Errorf("orders.dispute_window must be positive"))
	}
	if cfg.Orders.CounterWindow < 0 {
		errs = append(errs, fmt.Errorf("orders.counter_window must be positive"))
	}
	if cfg.Orders.AutoConfirmLimit < 0 {
		errs = append(errs, fmt.Errorf("orders.auto_confirm_limit must not be negative"))
	}

	if cfg.Schedule.SweepInterval < time.Second {
		errs = append(errs, fmt.Errorf("schedule.sweep_interval must be at least 1s"))
	}
	if cfg.Schedule.SweepBatch < 0 {
		errs = append(errs, fmt.Errorf("schedule.sweep_batch must not be negative"))
	}

	if cfg.Notifications.Discord.Enabled {
		u, err := url.Parse(cfg.Notifications.Discord.WebhookURL)
		if err != nil || u.Scheme != "https" || u.Host == "" {
			errs = append(errs, fmt.Errorf(
				"notifications.discord.webhook_url must be an https URL when discord is enabled",
			))
		}
	}

	switch cfg.Logging.Format {
	case "text", "json", "console":
	default:
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json, console (got %q)", cfg.Logging.Format,
		))
	}

	return errors.Join(errs...)
}
