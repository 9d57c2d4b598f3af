package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"MarketCalendar/internal/alert"
	"MarketCalendar/internal/model"
	"MarketCalendar/internal/pattern"
	"MarketCalendar/internal/theme"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Data struct {
		LoadDelay time.Duration `yaml:"load_delay"`
		Seed      int64         `yaml:"seed"`
		CSVPath   string        `yaml:"csv_path"`
	} `yaml:"data"`
	View struct {
		Theme     string `yaml:"theme"`
		Timeframe string `yaml:"timeframe"`
		Metric    string `yaml:"metric"`
	} `yaml:"view"`
	Patterns pattern.Config `yaml:"patterns"`
	Alerts   []model.Alert  `yaml:"alerts"`
	Export   struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file yields the defaults.
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
	if v := os.Getenv("CALENDAR_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("CALENDAR_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("CALENDAR_REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("CALENDAR_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("CALENDAR_SEED: %w", err)
		}
		cfg.Data.Seed = seed
	}
	if v := os.Getenv("CALENDAR_LOAD_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("CALENDAR_LOAD_DELAY: %w", err)
		}
		cfg.Data.LoadDelay = d
	}
	if v := os.Getenv("CALENDAR_CSV_PATH"); v != "" {
		cfg.Data.CSVPath = v
	}
	if v := os.Getenv("CALENDAR_THEME"); v != "" {
		cfg.View.Theme = v
	}
	if v := os.Getenv("CALENDAR_TIMEFRAME"); v != "" {
		cfg.View.Timeframe = v
	}
	if v := os.Getenv("CALENDAR_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 */5 * * * *"
	}
	if cfg.View.Theme == "" {
		cfg.View.Theme = theme.DefaultID
	}
	if cfg.View.Timeframe == "" {
		cfg.View.Timeframe = string(model.TimeframeDaily)
	}
	if cfg.View.Metric == "" {
		cfg.View.Metric = string(model.MetricVolatility)
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "exports"
	}

	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if _, err := CronParser.Parse(c.Schedule.RefreshCron); err != nil {
		return fmt.Errorf("schedule.refresh_cron: %w", err)
	}
	if c.Data.LoadDelay < 0 {
		return fmt.Errorf("data.load_delay must not be negative")
	}
	if _, err := model.ParseTimeframe(c.View.Timeframe); err != nil {
		return fmt.Errorf("view.timeframe: %w", err)
	}
	if _, err := model.ParseMetric(c.View.Metric); err != nil {
		return fmt.Errorf("view.metric: %w", err)
	}
	for i, a := range c.Alerts {
		if err := alert.Validate(a); err != nil {
			return fmt.Errorf("alerts[%d]: %w", i, err)
		}
	}
	return nil
}

// CronParser parses the six-field (with seconds) specs the scheduler uses.
var CronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
