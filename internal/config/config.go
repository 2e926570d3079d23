package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ortobahn/ortobahn/pkg/logger"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Admin   AdminConfig   `mapstructure:"admin"`
	Session SessionConfig `mapstructure:"session"`
	Backups BackupsConfig `mapstructure:"backups"`
	Stripe  StripeConfig  `mapstructure:"stripe"`
}

type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	DataDir string `mapstructure:"data_dir"`
	HTTPS   bool   `mapstructure:"https"`
}

type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type SessionConfig struct {
	Secret string `mapstructure:"secret"`
}

type BackupsConfig struct {
	Dir        string `mapstructure:"dir"`
	MaxBackups int    `mapstructure:"max_backups"`
	Schedule   string `mapstructure:"schedule"`
}

type StripeConfig struct {
	WebhookSecret string `mapstructure:"webhook_secret"`
}

// DefaultMaxBackups is the retention ceiling applied when the config file
// does not set one.
const DefaultMaxBackups = 10

// DefaultBackupSchedule runs the nightly rotation at 03:00.
const DefaultBackupSchedule = "0 3 * * *"

func Load() (*Config, error) {
	var cfg Config

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.data_dir", getDefaultDataDir())
	viper.SetDefault("server.https", false)
	viper.SetDefault("backups.max_backups", DefaultMaxBackups)
	viper.SetDefault("backups.schedule", DefaultBackupSchedule)

	if err := viper.UnmarshalKey("server", &cfg.Server); err != nil {
		return nil, fmt.Errorf("unable to decode server config: %w", err)
	}
	if err := viper.UnmarshalKey("admin", &cfg.Admin); err != nil {
		return nil, fmt.Errorf("unable to decode admin config: %w", err)
	}
	if err := viper.UnmarshalKey("session", &cfg.Session); err != nil {
		return nil, fmt.Errorf("unable to decode session config: %w", err)
	}
	if err := viper.UnmarshalKey("backups", &cfg.Backups); err != nil {
		return nil, fmt.Errorf("unable to decode backups config: %w", err)
	}
	if err := viper.UnmarshalKey("stripe", &cfg.Stripe); err != nil {
		return nil, fmt.Errorf("unable to decode stripe config: %w", err)
	}

	// Environment overrides take precedence over the config file
	if val := os.Getenv("ORTOBAHN_SESSION_SECRET"); val != "" {
		cfg.Session.Secret = val
		logger.Info("Using environment variable ORTOBAHN_SESSION_SECRET")
	}
	if val := os.Getenv("ORTOBAHN_STRIPE_WEBHOOK_SECRET"); val != "" {
		cfg.Stripe.WebhookSecret = val
		logger.Info("Using environment variable ORTOBAHN_STRIPE_WEBHOOK_SECRET")
	}

	if cfg.Server.DataDir == "" {
		cfg.Server.DataDir = getDefaultDataDir()
		logger.Debug("Config had empty data_dir, using default", "data_dir", cfg.Server.DataDir)
	}
	if cfg.Backups.Dir == "" {
		cfg.Backups.Dir = filepath.Join(cfg.Server.DataDir, "backups")
		logger.Debug("Config had empty backups.dir, using default", "dir", cfg.Backups.Dir)
	}

	// A retention ceiling of zero or less would delete every backup the
	// rotation just created. Reject it instead of guessing.
	if cfg.Backups.MaxBackups <= 0 {
		return nil, fmt.Errorf("backups.max_backups must be a positive integer, got %d", cfg.Backups.MaxBackups)
	}

	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return nil, fmt.Errorf("admin.username and admin.password are required")
	}

	// An empty secret would make webhook.ConstructEvent verify against the
	// HMAC key "", accepting any forged signature.
	if cfg.Stripe.WebhookSecret == "" {
		return nil, fmt.Errorf("stripe.webhook_secret is required (or set ORTOBAHN_STRIPE_WEBHOOK_SECRET)")
	}

	return &cfg, nil
}

// DBPath returns the location of the live SQLite database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.Server.DataDir, "db", "ortobahn.db")
}

// getDefaultDataDir returns a platform-appropriate default data directory
func getDefaultDataDir() string {
	if os.Getuid() != 0 {
		if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
			return filepath.Join(dataHome, "ortobahn")
		}
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, ".local", "share", "ortobahn")
		}
	}
	return "/var/lib/ortobahn"
}
