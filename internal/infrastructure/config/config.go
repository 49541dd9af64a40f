package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config holds all process-level configuration. User-editable sync
// settings (API URL, wifi-only, sync enabled) live in the local settings
// table instead; this covers only what is fixed for the life of the
// process.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	HTTP     HTTPConfig
	Remote   RemoteConfig
	Log      LogConfig
	Sync     SyncConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// DatabaseConfig holds the embedded database settings
type DatabaseConfig struct {
	// Path is the sqlite database file, or ":memory:" for an ephemeral
	// cache
	Path string
}

// HTTPConfig holds the loopback HTTP server configuration
type HTTPConfig struct {
	ListenAddr      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// RemoteConfig holds fixed parameters for talking to the ERP backend.
// The base URL itself is a user setting; the tenant identifier and the
// per-call timeout are provisioned with the device.
type RemoteConfig struct {
	TenantID       uuid.UUID
	RequestTimeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// SyncConfig holds sync engine behaviour fixed at process level
type SyncConfig struct {
	// SyncOnStart runs a best-effort sync pass when the process starts
	SyncOnStart bool
}

// Load loads configuration from TOML file and environment variables.
// Priority (highest to lowest):
//  1. Environment variables with COMPANION_ prefix
//  2. config.toml
//  3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("COMPANION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		HTTP: HTTPConfig{
			ListenAddr:      v.GetString("http.listen_addr"),
			ReadTimeout:     v.GetDuration("http.read_timeout"),
			WriteTimeout:    v.GetDuration("http.write_timeout"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
		},
		Remote: RemoteConfig{
			RequestTimeout: v.GetDuration("remote.request_timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Sync: SyncConfig{
			SyncOnStart: v.GetBool("sync.on_start"),
		},
	}

	tenantID, err := uuid.Parse(v.GetString("remote.tenant_id"))
	if err != nil {
		return nil, fmt.Errorf("invalid remote.tenant_id: %w", err)
	}
	cfg.Remote.TenantID = tenantID

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.HTTP.ListenAddr == "" {
		return fmt.Errorf("http.listen_addr must not be empty")
	}
	if c.Remote.TenantID == uuid.Nil {
		return fmt.Errorf("remote.tenant_id must be set")
	}
	if c.Remote.RequestTimeout <= 0 {
		return fmt.Errorf("remote.request_timeout must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "erp-companion")
	v.SetDefault("app.env", "development")
	v.SetDefault("database.path", "companion.db")
	v.SetDefault("http.listen_addr", "127.0.0.1:8844")
	v.SetDefault("http.read_timeout", "15s")
	v.SetDefault("http.write_timeout", "30s")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("remote.tenant_id", "00000000-0000-0000-0000-000000000001")
	v.SetDefault("remote.request_timeout", "30s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("sync.on_start", true)
}
