package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"VixSentinel/internal/vix"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Analysis struct {
		VIXType      string `yaml:"vix_type"`
		CompareType  string `yaml:"compare_type"`
		Bins         int    `yaml:"bins"`
		LookbackDays int    `yaml:"lookback_days"`
	} `yaml:"analysis"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("VIX_TYPE"); v != "" {
		cfg.Analysis.VIXType = v
	}
	if v := os.Getenv("VIX_COMPARE_TYPE"); v != "" {
		cfg.Analysis.CompareType = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.LookbackDays = n
		}
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Analysis.VIXType == "" {
		cfg.Analysis.VIXType = "regular"
	}
	if cfg.Analysis.CompareType == "" {
		cfg.Analysis.CompareType = "vix9d"
	}
	if cfg.Analysis.Bins == 0 {
		cfg.Analysis.Bins = 10
	}
	if cfg.Analysis.LookbackDays == 0 {
		cfg.Analysis.LookbackDays = 90
	}
	if cfg.Schedule.DailyCron == "" {
		// after the futures settle, Mon-Fri
		cfg.Schedule.DailyCron = "0 30 22 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/vix_sentinel.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if !vix.KnownType(c.Analysis.VIXType) {
		return fmt.Errorf("analysis.vix_type %q is not recognized", c.Analysis.VIXType)
	}
	if !vix.KnownType(c.Analysis.CompareType) {
		return fmt.Errorf("analysis.compare_type %q is not recognized", c.Analysis.CompareType)
	}
	if c.Analysis.VIXType == c.Analysis.CompareType {
		return fmt.Errorf("analysis.vix_type and compare_type must differ")
	}
	if c.Analysis.Bins < 2 {
		return fmt.Errorf("analysis.bins must be at least 2")
	}
	if c.Analysis.LookbackDays <= 0 {
		return fmt.Errorf("analysis.lookback_days must be positive")
	}
	return nil
}
