// Package config loads fairs settings from a YAML file, FAIRS_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/mmynk/fairs/internal/money"
)

const envPrefix = "FAIRS"

// Config holds the runtime settings of the fairs CLI and local server.
type Config struct {
	DBPath         string `mapstructure:"db_path"`
	ListenAddr     string `mapstructure:"listen_addr"`
	LogLevel       string `mapstructure:"log_level"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`

	// Currency seeds the display currency of a fresh database.
	Currency string `mapstructure:"currency"`

	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// CORSAllowedOrigins lists browser origins allowed to call the API.
	// Empty means same-origin only.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("db_path", "./data/fairs.db")
	v.SetDefault("listen_addr", "127.0.0.1:8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("currency", "")
	v.SetDefault("shutdown_timeout", "5s")
	v.SetDefault("cors_allowed_origins", []string{})
}

// Load reads cfgFile, or fairs.yaml from the working directory or
// $HOME/.config/fairs when cfgFile is empty, and decodes the merged settings.
// A missing default config file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/fairs")
		v.SetConfigName("fairs")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&cfg, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if c.ListenAddr == "" {
		return errors.New("listen_addr must not be empty")
	}
	if c.Currency != "" {
		c.Currency = strings.ToUpper(c.Currency)
		if _, ok := money.LookupCurrency(c.Currency); !ok {
			return fmt.Errorf("unknown currency %q", c.Currency)
		}
	}
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return errors.New("cors_allowed_origins must list origins, not \"*\"")
		}
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}
