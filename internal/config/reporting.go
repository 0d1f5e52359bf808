package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ReportingConfig tunes report rendering and query limits.
type ReportingConfig struct {
	Timezone         string        `mapstructure:"timezone"`
	PracticeName     string        `mapstructure:"practiceName"`
	CurrencySymbol   string        `mapstructure:"currencySymbol"`
	DefaultPageSize  int           `mapstructure:"defaultPageSize"`
	MaxPageSize      int           `mapstructure:"maxPageSize"`
	StatementTimeout time.Duration `mapstructure:"statementTimeout"`
}

func DefaultReportingConfig() ReportingConfig {
	return ReportingConfig{
		Timezone:         "UTC",
		PracticeName:     "Practice",
		CurrencySymbol:   "$",
		DefaultPageSize:  10,
		MaxPageSize:      500,
		StatementTimeout: 15 * time.Second,
	}
}

// Location resolves the configured timezone, falling back to UTC.
func (c ReportingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(strings.TrimSpace(c.Timezone))
	if err != nil || strings.TrimSpace(c.Timezone) == "" {
		return time.UTC
	}
	return loc
}

type ReportingConfigHolder struct {
	current atomic.Value // holds ReportingConfig
}

// NewStaticReportingConfigHolder wraps a fixed config, used by tests and the CLI.
func NewStaticReportingConfigHolder(cfg ReportingConfig) *ReportingConfigHolder {
	holder := &ReportingConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func NewReportingConfigHolder(cfg Config) (*ReportingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("reporting")
	v.SetConfigType("yml")
	if cfg.ReportingConfigPath != "" {
		v.AddConfigPath(cfg.ReportingConfigPath)
	}
	v.AddConfigPath("/etc/praxis")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PRAXIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultReportingConfig()
	v.SetDefault("reporting.timezone", defaults.Timezone)
	v.SetDefault("reporting.practiceName", defaults.PracticeName)
	v.SetDefault("reporting.currencySymbol", defaults.CurrencySymbol)
	v.SetDefault("reporting.defaultPageSize", defaults.DefaultPageSize)
	v.SetDefault("reporting.maxPageSize", defaults.MaxPageSize)
	v.SetDefault("reporting.statementTimeout", defaults.StatementTimeout)

	fileLoaded := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		fileLoaded = false
	}

	var current ReportingConfig
	if err := v.UnmarshalKey("reporting", &current); err != nil {
		return nil, err
	}
	if err := validateReportingConfig(current); err != nil {
		return nil, err
	}

	holder := NewStaticReportingConfigHolder(current)
	if !fileLoaded {
		return holder, nil
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		var updated ReportingConfig
		if err := v.UnmarshalKey("reporting", &updated); err != nil {
			log.Printf("[reporting-config] reload failed: %v", err)
			return
		}
		if err := validateReportingConfig(updated); err != nil {
			log.Printf("[reporting-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[reporting-config] reloaded from %s", e.Name)
	})
	v.WatchConfig()

	return holder, nil
}

func (h *ReportingConfigHolder) Get() ReportingConfig {
	if h == nil {
		return DefaultReportingConfig()
	}
	cfg, ok := h.current.Load().(ReportingConfig)
	if !ok {
		return DefaultReportingConfig()
	}
	return cfg
}

func validateReportingConfig(cfg ReportingConfig) error {
	if cfg.DefaultPageSize <= 0 {
		return errors.New("reporting.defaultPageSize must be positive")
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		return errors.New("reporting.maxPageSize cannot be smaller than reporting.defaultPageSize")
	}
	if cfg.StatementTimeout < 0 {
		return errors.New("reporting.statementTimeout cannot be negative")
	}
	// The symbol is written between quotes in the spreadsheet number format.
	if strings.ContainsAny(cfg.CurrencySymbol, `"\`) {
		return errors.New("reporting.currencySymbol cannot contain quotes or backslashes")
	}
	if _, err := time.LoadLocation(strings.TrimSpace(cfg.Timezone)); err != nil {
		return fmt.Errorf("reporting.timezone: %w", err)
	}
	return nil
}
