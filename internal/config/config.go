package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Port               string
	LogLevel           string
	LogFormat          string
	DefaultCurrency    string
	DefaultHorizonDays int
	AnchorTZ           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	MaxBodyBytes       int64
	ReportDisclaimer   string
}

// SetDefaults registers every key with its default value
func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DEFAULT_CURRENCY", "$")
	v.SetDefault("DEFAULT_HORIZON_DAYS", 90)
	v.SetDefault("ANCHOR_TZ", "UTC")
	v.SetDefault("READ_TIMEOUT", 10*time.Second)
	v.SetDefault("WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("REPORT_DISCLAIMER", "")
}

// NewConfig loads configuration from environment variables and, when
// SERENITY_CONFIG names a file, from that file first.
func NewConfig() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("SERENITY_CONFIG"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	return Load(v)
}

// Load builds and validates a Config from an already populated viper instance
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:               v.GetString("PORT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		DefaultCurrency:    v.GetString("DEFAULT_CURRENCY"),
		DefaultHorizonDays: v.GetInt("DEFAULT_HORIZON_DAYS"),
		AnchorTZ:           v.GetString("ANCHOR_TZ"),
		ReadTimeout:        v.GetDuration("READ_TIMEOUT"),
		WriteTimeout:       v.GetDuration("WRITE_TIMEOUT"),
		MaxBodyBytes:       v.GetInt64("MAX_BODY_BYTES"),
		ReportDisclaimer:   v.GetString("REPORT_DISCLAIMER"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		errs = append(errs, fmt.Sprintf("invalid log format '%s': must be json or text", c.LogFormat))
	}
	if c.DefaultHorizonDays < 30 || c.DefaultHorizonDays > 365 {
		errs = append(errs, fmt.Sprintf("invalid default horizon %d: must be between 30 and 365 days", c.DefaultHorizonDays))
	}
	if _, err := time.LoadLocation(c.AnchorTZ); err != nil {
		errs = append(errs, fmt.Sprintf("invalid anchor time zone '%s': %v", c.AnchorTZ, err))
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		errs = append(errs, "read and write timeouts must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Sprintf("invalid max body size %d: must be positive", c.MaxBodyBytes))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Location returns the time zone in which the anchor date is read
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AnchorTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

// NewLogger builds the application logger from the configured level and format
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	if c.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
